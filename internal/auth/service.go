// internal/auth/service.go
package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned when the username or password is
	// wrong. It is a normal login outcome, not a system failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRateLimited is returned when login attempts come in faster than
	// the limiter allows.
	ErrRateLimited = errors.New("too many login attempts")
)

// Service defines the interface for the authentication boundary.
type Service interface {
	// Authenticate verifies the credentials and returns the session
	// identity of the employee on success.
	Authenticate(ctx context.Context, username, password string) (*Session, error)
}
