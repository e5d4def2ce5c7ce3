package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider: email address plus password.
const ProviderTypeEmail = "email"

// User is an account that can own listings.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"` // unique, stored normalized
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Authentication is a login credential of a user. For ProviderTypeEmail the
// ProviderUserID is the normalized email address.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string
	ProviderUserID string
	PasswordHash   string
	CreatedAt      time.Time
}

// RefreshToken is one login session. Only the SHA-256 of the token is kept.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session can no longer be refreshed at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// NormalizeEmail lower-cases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
