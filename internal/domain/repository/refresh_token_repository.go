package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository keeps one row per login session, keyed by the
// SHA-256 of the refresh token. The raw token is never stored.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash ends one session. An unknown hash yields
	// ErrRefreshTokenNotFound, which lets rotation detect a token used twice.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID ends every session of the user.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
