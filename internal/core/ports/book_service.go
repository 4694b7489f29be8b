package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// CreateBookInput carries all data needed to create a new book.
// Recommended, ImageURL and Description are optional; their zero values are
// the documented defaults.
type CreateBookInput struct {
	Title         string
	Author        string
	StockQuantity int
	Recommended   bool
	ImageURL      string
	Description   string
}

// BookService defines use-case operations for the inventory. The actor is
// the authenticated username, recorded in the audit trail. Every mutation
// returns the full updated record.
type BookService interface {
	Create(ctx context.Context, input CreateBookInput, actor string) (*domain.Book, error)
	Get(ctx context.Context, id string) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Update(ctx context.Context, id string, patch BookPatch, actor string) (*domain.Book, error)
	UpdateStock(ctx context.Context, id string, quantity int, actor string) (*domain.Book, error)
	SetRecommended(ctx context.Context, id string, recommended bool, actor string) (*domain.Book, error)
	RemoveRecommendation(ctx context.Context, id string, actor string) (*domain.Book, error)
	AddFeedback(ctx context.Context, id string, content string, actor string) (*domain.Book, error)
	Delete(ctx context.Context, id string, actor string) error
}
