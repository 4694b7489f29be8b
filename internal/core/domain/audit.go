package domain

import "time"

// Audit actions recorded for inventory mutations.
const (
	AuditBookCreated           = "book_created"
	AuditBookUpdated           = "book_updated"
	AuditBookDeleted           = "book_deleted"
	AuditStockUpdated          = "stock_updated"
	AuditRecommendationSet     = "recommendation_set"
	AuditRecommendationRemoved = "recommendation_removed"
	AuditFeedbackAdded         = "feedback_added"
)

// AuditEntry records a single inventory mutation. Entries are written
// asynchronously; a lost entry never fails the originating request.
type AuditEntry struct {
	BookID     string
	Action     string
	Actor      string
	OccurredAt time.Time
}
