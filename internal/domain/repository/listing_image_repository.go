package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrImageNotFound is returned when the image does not exist on the listing.
var ErrImageNotFound = errors.New("listing image not found")

// ListingImageRepository persists the image metadata of listings.
type ListingImageRepository interface {
	// Create inserts the image row.
	Create(ctx context.Context, image *entity.ListingImage) error

	// FindByID returns the image only when it belongs to listingID.
	FindByID(ctx context.Context, listingID, imageID uuid.UUID) (*entity.ListingImage, error)

	// ListByListing returns the listing's images ordered by position.
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]*entity.ListingImage, error)

	// CountByListing returns how many images the listing has.
	CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error)

	// Delete removes the image row.
	Delete(ctx context.Context, listingID, imageID uuid.UUID) error
}
