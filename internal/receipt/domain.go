// internal/receipt/domain.go
package receipt

import (
	"time"

	"github.com/google/uuid"
)

// Record is a persisted receipt. Records are written once per completed
// checkout and never modified.
type Record struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   int       `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	CustomerName string    `json:"customerName"`
	UploadDate   time.Time `json:"uploadDate"`
	Content      []byte    `json:"fileData"`
}
