package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/api/metrics"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// AuditSink receives audit entries for asynchronous recording. The request
// outcome never depends on the sink.
type AuditSink interface {
	Enqueue(entry domain.AuditEntry)
}

// BookService implements the inventory use-cases.
type BookService struct {
	repo  ports.BookRepository
	audit AuditSink
	log   zerolog.Logger
}

func NewBookService(repo ports.BookRepository, audit AuditSink, log zerolog.Logger) *BookService {
	return &BookService{repo: repo, audit: audit, log: log}
}

func (s *BookService) Create(ctx context.Context, input ports.CreateBookInput, actor string) (*domain.Book, error) {
	if input.Title == "" || input.Author == "" || input.StockQuantity < 0 {
		return nil, domain.ErrInvalidBookInput
	}

	now := time.Now().UTC()
	book := &domain.Book{
		Title:         input.Title,
		Author:        input.Author,
		StockQuantity: input.StockQuantity,
		Recommended:   input.Recommended,
		ImageURL:      input.ImageURL,
		Description:   input.Description,
		Feedback:      []domain.Feedback{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	metrics.BooksCreatedTotal.Inc()
	s.log.Info().Str("book_id", created.ID).Str("title", created.Title).Str("actor", actor).Msg("book created")
	s.record(created.ID, domain.AuditBookCreated, actor)

	return created, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookService) List(ctx context.Context) ([]*domain.Book, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update: only fields present in the patch are
// written, absent fields are left untouched.
func (s *BookService) Update(ctx context.Context, id string, patch ports.BookPatch, actor string) (*domain.Book, error) {
	if patch.Empty() {
		return nil, domain.ErrInvalidBookInput
	}
	if patch.StockQuantity != nil && *patch.StockQuantity < 0 {
		return nil, domain.ErrInvalidBookInput
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, domain.ErrInvalidBookInput
	}
	if patch.Author != nil && *patch.Author == "" {
		return nil, domain.ErrInvalidBookInput
	}

	book, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("book_id", id).Str("actor", actor).Msg("book updated")
	s.record(id, domain.AuditBookUpdated, actor)
	return book, nil
}

// UpdateStock replaces the absolute stock quantity. The value is not a delta.
func (s *BookService) UpdateStock(ctx context.Context, id string, quantity int, actor string) (*domain.Book, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidBookInput
	}

	book, err := s.repo.UpdateByID(ctx, id, ports.BookPatch{StockQuantity: &quantity})
	if err != nil {
		return nil, err
	}

	metrics.StockUpdatesTotal.Inc()
	s.log.Info().Str("book_id", id).Int("stock_quantity", quantity).Str("actor", actor).Msg("stock updated")
	s.record(id, domain.AuditStockUpdated, actor)
	return book, nil
}

func (s *BookService) SetRecommended(ctx context.Context, id string, recommended bool, actor string) (*domain.Book, error) {
	book, err := s.repo.UpdateByID(ctx, id, ports.BookPatch{Recommended: &recommended})
	if err != nil {
		return nil, err
	}

	metrics.RecommendationChangesTotal.WithLabelValues(fmt.Sprintf("%t", recommended)).Inc()
	s.record(id, domain.AuditRecommendationSet, actor)
	return book, nil
}

// RemoveRecommendation unconditionally clears the recommended flag.
func (s *BookService) RemoveRecommendation(ctx context.Context, id string, actor string) (*domain.Book, error) {
	recommended := false
	book, err := s.repo.UpdateByID(ctx, id, ports.BookPatch{Recommended: &recommended})
	if err != nil {
		return nil, err
	}

	metrics.RecommendationChangesTotal.WithLabelValues("false").Inc()
	s.record(id, domain.AuditRecommendationRemoved, actor)
	return book, nil
}

func (s *BookService) AddFeedback(ctx context.Context, id string, content string, actor string) (*domain.Book, error) {
	// The limit is characters, not bytes, matching the schema validator.
	if content == "" || utf8.RuneCountInString(content) > domain.MaxFeedbackLength {
		return nil, domain.ErrInvalidBookInput
	}

	fb := domain.Feedback{Content: content, CreatedAt: time.Now().UTC()}
	book, err := s.repo.AppendFeedback(ctx, id, fb)
	if err != nil {
		return nil, err
	}

	metrics.FeedbackAddedTotal.Inc()
	s.record(id, domain.AuditFeedbackAdded, actor)
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id string, actor string) error {
	book, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	s.log.Info().Str("book_id", book.ID).Str("title", book.Title).Str("actor", actor).Msg("book deleted")
	s.record(book.ID, domain.AuditBookDeleted, actor)
	return nil
}

func (s *BookService) record(bookID, action, actor string) {
	s.audit.Enqueue(domain.AuditEntry{
		BookID:     bookID,
		Action:     action,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	})
}
