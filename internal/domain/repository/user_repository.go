// Package repository declares the persistence contracts of the marketplace:
// users and their credentials, sessions, listings and listing images.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts. Email is unique.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error

	// Delete removes the user. Listings, images, credentials and sessions go with it.
	Delete(ctx context.Context, id uuid.UUID) error
}
