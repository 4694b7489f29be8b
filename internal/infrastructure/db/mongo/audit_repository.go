package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

const auditCollection = "inventory_audit"

// AuditRepository persists inventory audit entries.
type AuditRepository struct {
	coll *mongo.Collection
}

// NewAuditRepository creates an AuditRepository.
func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// Record inserts one audit entry.
func (r *AuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"book_id":     entry.BookID,
		"action":      entry.Action,
		"actor":       entry.Actor,
		"occurred_at": entry.OccurredAt.UTC(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
