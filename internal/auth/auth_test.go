package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUsers(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	users := `[
		{"id": 1, "username": "alex", "name": "Alex Moreau", "password": "espresso", "isManager": false},
		{"id": 2, "username": "sam", "name": "Sam Ortiz", "password": "latte", "isManager": true}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(users), 0o644))
	return dir
}

func TestFileServiceAuthenticate(t *testing.T) {
	svc, err := NewFileService(writeUsers(t))
	require.NoError(t, err)

	sess, err := svc.Authenticate(context.Background(), "sam", "latte")
	require.NoError(t, err)
	assert.Equal(t, 2, sess.EmployeeID)
	assert.Equal(t, "Sam Ortiz", sess.EmployeeName)
	assert.True(t, sess.Manager)
}

func TestFileServiceRejectsBadCredentials(t *testing.T) {
	svc, err := NewFileService(writeUsers(t))
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "alex", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody", "espresso")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFileServiceMissingDataIsFatal(t *testing.T) {
	_, err := NewFileService(t.TempDir())
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Minute)
	sess := &Session{EmployeeID: 7, EmployeeName: "Alex Moreau", Manager: true}

	signed, err := tokens.Mint(sess)
	require.NoError(t, err)

	got, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokens("secret-a", time.Minute).Mint(&Session{EmployeeID: 1})
	require.NoError(t, err)

	_, err = NewTokens("secret-b", time.Minute).Verify(signed)
	assert.Error(t, err)
}

func TestRequireSession(t *testing.T) {
	tokens := NewTokens("test-secret", time.Minute)
	sess := &Session{EmployeeID: 3, EmployeeName: "Sam Ortiz"}
	signed, err := tokens.Mint(sess)
	require.NoError(t, err)

	var seen *Session
	handler := RequireSession(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, 3, seen.EmployeeID)

	// No header at all.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
