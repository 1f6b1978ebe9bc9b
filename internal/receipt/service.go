// internal/receipt/service.go
package receipt

import (
	"context"

	"brewpos/internal/auth"
)

// History windows. Managers see every receipt from the last 30 days; other
// employees see only their own from the last 7.
const (
	managerHistoryDays  = 30
	employeeHistoryDays = 7
)

// Store defines the interface for receipt persistence and retrieval.
type Store interface {
	// Save persists a completed checkout's receipt for the serving
	// employee.
	Save(ctx context.Context, customerName string, employee *auth.Session, content []byte) error

	// History returns recent receipts, windowed and filtered by the
	// caller's role.
	History(ctx context.Context, sess *auth.Session) ([]Record, error)
}
