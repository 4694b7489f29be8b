package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidToken = errors.New("invalid token")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ValidRole reports whether role is one of the two recognised roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the resolved caller attached to a request after the auth
// middleware has verified the token and loaded the live user record. Role
// always comes from the database, never from the token claim.
type Identity struct {
	UserID   string
	Username string
	Role     string
}
