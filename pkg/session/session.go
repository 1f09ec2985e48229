// Package session implements the opaque session credential: a random token
// handed to the client in a cookie, stored server-side only as a SHA-256 hash
// on the user row.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"
)

const (
	// CookieName is the session cookie issued at registration and login.
	CookieName = "auth_session"

	// tokenBytes is the token entropy. 18 bytes keeps the base64url form
	// padding-free.
	tokenBytes = 18

	// MaxAge is the session cookie lifetime.
	MaxAge = 30 * 24 * time.Hour
)

// GenerateToken returns a new random session token.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Hash returns the lowercase hex SHA-256 digest of a token, the form stored
// in the database.
func Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
