package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type AuthService interface {
	// Signup creates a new account and returns a freshly issued token so the
	// client is logged in immediately. Role defaults to User when empty.
	Signup(ctx context.Context, username, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
