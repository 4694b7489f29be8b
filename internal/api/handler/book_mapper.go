package handler

import (
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createBookRequest) ports.CreateBookInput {
	return ports.CreateBookInput{
		Title:         req.Title,
		Author:        req.Author,
		StockQuantity: *req.StockQuantity,
		Recommended:   req.Recommended,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
	}
}

func toPatch(req updateBookRequest) ports.BookPatch {
	return ports.BookPatch{
		Title:         req.Title,
		Author:        req.Author,
		StockQuantity: req.StockQuantity,
		Recommended:   req.Recommended,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
	}
}

// --- Domain → HTTP response ---

func toBookResponse(b *domain.Book) bookResponse {
	feedback := make([]feedbackResponse, len(b.Feedback))
	for i, fb := range b.Feedback {
		feedback[i] = feedbackResponse{Content: fb.Content, CreatedAt: fb.CreatedAt.UTC()}
	}
	return bookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		StockQuantity: b.StockQuantity,
		Recommended:   b.Recommended,
		ImageURL:      b.ImageURL,
		Description:   b.Description,
		Feedback:      feedback,
		CreatedAt:     b.CreatedAt.UTC(),
		UpdatedAt:     b.UpdatedAt.UTC(),
	}
}

func toBookListResponse(books []*domain.Book) []bookResponse {
	out := make([]bookResponse, len(books))
	for i, b := range books {
		out[i] = toBookResponse(b)
	}
	return out
}
