// internal/discount/file.go
package discount

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// fileService implements Service from a local JSON file.
type fileService struct {
	discounts []Discount
}

// NewFileService loads discounts.json from dataDir. A missing or unparseable
// file is a configuration error.
func NewFileService(dataDir string) (Service, error) {
	path := filepath.Join(dataDir, "discounts.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load discount data: %w", err)
	}

	var discounts []Discount
	if err := json.Unmarshal(data, &discounts); err != nil {
		return nil, fmt.Errorf("parse discounts.json: %w", err)
	}

	log.Printf("Loaded %d discounts from %s", len(discounts), path)
	return &fileService{discounts: discounts}, nil
}

func (s *fileService) ActiveDiscounts(_ context.Context) ([]Discount, error) {
	var active []Discount
	for _, d := range s.discounts {
		if d.IsActive {
			active = append(active, d)
		}
	}
	return active, nil
}
