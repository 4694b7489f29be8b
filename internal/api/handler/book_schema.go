package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// createBookRequest uses a pointer for stock_quantity so that an explicit 0
// passes "required" while an absent field does not.
type createBookRequest struct {
	Title         string `json:"title"          validate:"required"`
	Author        string `json:"author"         validate:"required"`
	StockQuantity *int   `json:"stock_quantity" validate:"required,gte=0"`
	Recommended   bool   `json:"recommended"`
	ImageURL      string `json:"image_url"`
	Description   string `json:"description"`
}

// updateBookRequest is the explicit patch body: every field is optional and
// only fields present in the JSON are applied.
type updateBookRequest struct {
	Title         *string `json:"title"          validate:"omitempty,min=1"`
	Author        *string `json:"author"         validate:"omitempty,min=1"`
	StockQuantity *int    `json:"stock_quantity" validate:"omitempty,gte=0"`
	Recommended   *bool   `json:"recommended"`
	ImageURL      *string `json:"image_url"`
	Description   *string `json:"description"`
}

type updateStockRequest struct {
	StockQuantity *int `json:"stock_quantity" validate:"required,gte=0"`
}

type setRecommendedRequest struct {
	Recommended *bool `json:"recommended" validate:"required"`
}

type addFeedbackRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type feedbackResponse struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type bookResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Author        string             `json:"author"`
	StockQuantity int                `json:"stock_quantity"`
	Recommended   bool               `json:"recommended"`
	ImageURL      string             `json:"image_url"`
	Description   string             `json:"description"`
	Feedback      []feedbackResponse `json:"feedback"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type bookMessageResponse struct {
	Message string       `json:"message"`
	Book    bookResponse `json:"book"`
}

type deletedResponse struct {
	Message string `json:"message"`
}
