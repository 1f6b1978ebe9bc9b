// internal/receipt/file.go
package receipt

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"brewpos/internal/auth"
)

// fileStore implements Store on top of receipts.json. Saves live only in
// memory; the JSON file seeds the history for demo purposes.
type fileStore struct {
	mu      sync.Mutex
	records []Record
}

// fileRecord is the on-disk shape; content is a plain string there.
type fileRecord struct {
	EmployeeID   int       `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	CustomerName string    `json:"customerName"`
	UploadDate   time.Time `json:"uploadDate"`
	FileData     string    `json:"fileData"`
}

// NewFileStore loads receipts.json from dataDir. An absent file leaves the
// history empty; a garbled file is a configuration error.
func NewFileStore(dataDir string) (Store, error) {
	path := filepath.Join(dataDir, "receipts.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("No receipts.json in %s; starting with empty history", dataDir)
		return &fileStore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load receipt data: %w", err)
	}

	var loaded []fileRecord
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse receipts.json: %w", err)
	}

	records := make([]Record, 0, len(loaded))
	for _, fr := range loaded {
		records = append(records, Record{
			ID:           uuid.New(),
			EmployeeID:   fr.EmployeeID,
			EmployeeName: fr.EmployeeName,
			CustomerName: fr.CustomerName,
			UploadDate:   fr.UploadDate,
			Content:      []byte(fr.FileData),
		})
	}

	log.Printf("Loaded %d receipts from %s", len(records), path)
	return &fileStore{records: records}, nil
}

func (s *fileStore) Save(_ context.Context, customerName string, employee *auth.Session, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, Record{
		ID:           uuid.New(),
		EmployeeID:   employee.EmployeeID,
		EmployeeName: employee.EmployeeName,
		CustomerName: customerName,
		UploadDate:   time.Now(),
		Content:      content,
	})
	return nil
}

func (s *fileStore) History(_ context.Context, sess *auth.Session) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := employeeHistoryDays
	if sess.Manager {
		window = managerHistoryDays
	}
	cutoff := time.Now().AddDate(0, 0, -window)

	var out []Record
	for _, rec := range s.records {
		if rec.UploadDate.Before(cutoff) {
			continue
		}
		if !sess.Manager && rec.EmployeeID != sess.EmployeeID {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadDate.After(out[j].UploadDate) })
	return out, nil
}
