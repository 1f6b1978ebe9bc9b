// internal/auth/file.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// fileService implements Service from users.json. The file mode is the
// demo/dev data source and stores plain-text passwords.
type fileService struct {
	users []employee
}

// NewFileService loads users.json from dataDir. The kiosk cannot start in
// file mode without login data.
func NewFileService(dataDir string) (Service, error) {
	path := filepath.Join(dataDir, "users.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load login data: %w", err)
	}

	var users []employee
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users.json: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%s contains no users", path)
	}

	log.Printf("Loaded %d users from %s for file-based authentication", len(users), path)
	return &fileService{users: users}, nil
}

func (s *fileService) Authenticate(_ context.Context, username, password string) (*Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return &Session{EmployeeID: u.ID, EmployeeName: u.Name, Manager: u.Manager}, nil
		}
	}
	log.Printf("Authentication failed for user %q", username)
	return nil, ErrInvalidCredentials
}
