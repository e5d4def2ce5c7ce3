package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Values of the "type" claim. An access token is never accepted where a
// refresh token is expected, and the other way round.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT claims of both token kinds; the subject is UserID.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer tokens of the HTTP API.
type TokenService interface {
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration is how long a stored session stays usable.
	GetRefreshTokenDuration() time.Duration
}
