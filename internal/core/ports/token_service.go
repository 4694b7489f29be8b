package ports

import "github.com/bookhaven/bookstore-api/internal/core/domain"

// TokenService issues and verifies signed, time-limited identity tokens.
// Verification is a pure function of the token, the secret and the clock;
// nothing is persisted server-side.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(raw string) (*domain.Identity, error)
}
