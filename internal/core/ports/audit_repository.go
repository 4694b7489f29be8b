package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// AuditRepository persists inventory audit entries.
type AuditRepository interface {
	Record(ctx context.Context, entry *domain.AuditEntry) error
}
