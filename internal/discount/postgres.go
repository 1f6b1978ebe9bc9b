// internal/discount/postgres.go
package discount

import (
	"context"
	"database/sql"
	"fmt"
)

// postgresService implements Service against the kiosk database.
type postgresService struct {
	db *sql.DB
}

// NewPostgresService creates a database-backed discount source.
func NewPostgresService(db *sql.DB) Service {
	return &postgresService{db: db}
}

func (s *postgresService) ActiveDiscounts(ctx context.Context) ([]Discount, error) {
	query := `
		SELECT id, name, amount, is_percentage, is_active
		FROM discounts
		WHERE is_active = TRUE
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query discounts: %w", err)
	}
	defer rows.Close()

	var discounts []Discount
	for rows.Next() {
		var d Discount
		if err := rows.Scan(&d.ID, &d.Name, &d.Amount, &d.IsPercentage, &d.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan discount: %w", err)
		}
		discounts = append(discounts, d)
	}
	return discounts, rows.Err()
}
