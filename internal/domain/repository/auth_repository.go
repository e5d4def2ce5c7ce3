package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/pkg/errors"
)

var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository stores login credentials. A (provider, providerUserID) pair
// belongs to at most one user; for email logins providerUserID is the
// normalized email address.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)
}
