package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"assuredgig/internal/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("session not found")
	ErrRefreshInvalid = errors.New("refresh token invalid")
)

// Session is the server-side record behind an access token's sid claim.
type Session struct {
	ID          string      `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Role        models.Role `json:"role"`
	RefreshHash string      `json:"refresh_hash"`
	CreatedAt   time.Time   `json:"created_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

// Expired reports whether the session is past its refresh window.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store is the session registry.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	// Rotate swaps the refresh hash if oldHash still matches, extending the expiry.
	Rotate(ctx context.Context, id, oldHash, newHash string, expiresAt time.Time) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// NewRefreshToken returns a token of the form "<sid>.<secret>" and the hash to store.
func NewRefreshToken(sessionID string) (token, hash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	secret := hex.EncodeToString(buf)
	return sessionID + "." + secret, HashSecret(secret), nil
}

// ParseRefreshToken splits a refresh token into its session id and secret.
func ParseRefreshToken(token string) (sessionID, secret string, err error) {
	sessionID, secret, ok := strings.Cut(token, ".")
	if !ok || sessionID == "" || secret == "" {
		return "", "", ErrRefreshInvalid
	}
	return sessionID, secret, nil
}

func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func hashesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
