package domain

import (
	"errors"
	"time"
)

var ErrBookNotFound = errors.New("book not found")
var ErrInvalidBookInput = errors.New("invalid book input")
var ErrForbidden = errors.New("access forbidden")

// MaxFeedbackLength is the upper bound on a single feedback entry.
const MaxFeedbackLength = 500

// Feedback is a single reader comment attached to a book. Entries are
// append-only; the timestamp is assigned by the server.
type Feedback struct {
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Book is the core inventory aggregate.
type Book struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	Title         string     `json:"title" bson:"title"`
	Author        string     `json:"author" bson:"author"`
	StockQuantity int        `json:"stock_quantity" bson:"stock_quantity"`
	Recommended   bool       `json:"recommended" bson:"recommended"`
	ImageURL      string     `json:"image_url" bson:"image_url"`
	Description   string     `json:"description" bson:"description"`
	Feedback      []Feedback `json:"feedback" bson:"feedback"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" bson:"updated_at"`
}
