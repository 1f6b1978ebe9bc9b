// internal/auth/postgres.go
package auth

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

// postgresService implements Service against the employees table.
type postgresService struct {
	db      *sql.DB
	limiter *rate.Limiter
}

// NewPostgresService creates a database-backed authentication service.
func NewPostgresService(db *sql.DB) Service {
	return &postgresService{
		db:      db,
		limiter: rate.NewLimiter(rate.Limit(1), 5), // 1 attempt/s sustained, bursts of 5
	}
}

func (s *postgresService) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	if !s.limiter.Allow() {
		return nil, ErrRateLimited
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	query := `
		SELECT id, first_name || ' ' || last_name AS name, password, is_manager
		FROM employees
		WHERE LOWER(login) = $1
	`
	var (
		id      int
		name    string
		hash    string
		manager bool
	)
	err := s.db.QueryRowContext(ctx, query, strings.ToLower(username)).Scan(&id, &name, &hash, &manager)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &Session{EmployeeID: id, EmployeeName: name, Manager: manager}, nil
}
