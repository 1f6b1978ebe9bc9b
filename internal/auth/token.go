// internal/auth/token.go
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens mints and verifies the signed session tokens the kiosk UI carries
// between requests.
type Tokens struct {
	secret  []byte
	expires time.Duration
}

// NewTokens creates a token codec with the given signing secret and lifetime.
func NewTokens(secret string, expires time.Duration) *Tokens {
	if expires <= 0 {
		expires = time.Hour
	}
	return &Tokens{secret: []byte(secret), expires: expires}
}

// Mint issues a signed token for the session.
func (t *Tokens) Mint(sess *Session) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(sess.EmployeeID),
		"name": sess.EmployeeName,
		"mgr":  sess.Manager,
		"iat":  now.Unix(),
		"exp":  now.Add(t.expires).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and rebuilds the session it encodes.
func (t *Tokens) Verify(tokenStr string) (*Session, error) {
	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (any, error) {
		if tok.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid session token claims")
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.Atoi(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid session token subject")
	}
	name, _ := claims["name"].(string)
	manager, _ := claims["mgr"].(bool)

	return &Session{EmployeeID: id, EmployeeName: name, Manager: manager}, nil
}
