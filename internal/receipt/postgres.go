// internal/receipt/postgres.go
package receipt

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"brewpos/internal/auth"
)

// postgresStore implements Store against the receipts_files table.
type postgresStore struct {
	db     *sql.DB
	tracer trace.Tracer
}

// NewPostgresStore creates a database-backed receipt store.
func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{
		db:     db,
		tracer: otel.Tracer("brewpos/receipt"),
	}
}

func (s *postgresStore) Save(ctx context.Context, customerName string, employee *auth.Session, content []byte) error {
	ctx, span := s.tracer.Start(ctx, "receipt.save",
		trace.WithAttributes(
			attribute.Int("employee.id", employee.EmployeeID),
			attribute.Int("content.bytes", len(content)),
		),
	)
	defer span.End()

	query := `
		INSERT INTO receipts_files (id, customer_name, employee_id, upload_date, file_data)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, uuid.New(), customerName, employee.EmployeeID, time.Now(), content)
	if err != nil {
		return fmt.Errorf("failed to save receipt: %w", err)
	}
	return nil
}

func (s *postgresStore) History(ctx context.Context, sess *auth.Session) ([]Record, error) {
	if sess.Manager {
		query := `
			SELECT r.id, r.employee_id, e.first_name || ' ' || e.last_name AS employee_name,
			       r.customer_name, r.upload_date, r.file_data
			FROM receipts_files r JOIN employees e ON r.employee_id = e.id
			WHERE r.upload_date >= NOW() - make_interval(days => $1)
			ORDER BY r.upload_date DESC
		`
		return s.queryRecords(ctx, query, managerHistoryDays)
	}

	query := `
		SELECT r.id, r.employee_id, e.first_name || ' ' || e.last_name AS employee_name,
		       r.customer_name, r.upload_date, r.file_data
		FROM receipts_files r JOIN employees e ON r.employee_id = e.id
		WHERE r.employee_id = $1 AND r.upload_date >= NOW() - make_interval(days => $2)
		ORDER BY r.upload_date DESC
	`
	return s.queryRecords(ctx, query, sess.EmployeeID, employeeHistoryDays)
}

func (s *postgresStore) queryRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipt history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.CustomerName, &rec.UploadDate, &rec.Content); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
