package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// BookPatch is an explicit partial update: only non-nil fields are applied,
// absent fields are left untouched. This replaces duck-typed update bodies
// with a value type the repository can translate field by field.
type BookPatch struct {
	Title         *string
	Author        *string
	StockQuantity *int
	Recommended   *bool
	ImageURL      *string
	Description   *string
}

// Empty reports whether the patch carries no fields at all.
func (p BookPatch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.StockQuantity == nil &&
		p.Recommended == nil && p.ImageURL == nil && p.Description == nil
}

// BookRepository defines persistence operations for books. Each call is a
// single atomic document operation; there are no cross-document transactions.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	FindAll(ctx context.Context) ([]*domain.Book, error)
	// UpdateByID applies the non-nil patch fields and returns the updated
	// document, or domain.ErrBookNotFound when the id does not resolve.
	UpdateByID(ctx context.Context, id string, patch BookPatch) (*domain.Book, error)
	// AppendFeedback atomically pushes one feedback entry.
	AppendFeedback(ctx context.Context, id string, fb domain.Feedback) (*domain.Book, error)
	DeleteByID(ctx context.Context, id string) (*domain.Book, error)
}
