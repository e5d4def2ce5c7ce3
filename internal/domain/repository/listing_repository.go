package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrListingNotFound is returned when no listing has the requested ID.
var ErrListingNotFound = errors.New("listing not found")

// ErrLocationChanged is returned by SetCoordinatesIfLocation when the stored
// location no longer matches the one that was geocoded.
var ErrLocationChanged = errors.New("listing location changed")

// ListingUpdate names the columns an update writes. Nil fields are left untouched.
// When Location is set, the coordinates of the listing are written with it in the
// same statement, so the pair always describes the stored location.
type ListingUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Location    *string
}

// ListingFilter narrows candidate listings in addition to the spatial bounds.
type ListingFilter struct {
	OwnerID  *uuid.UUID
	MinPrice *float64
	MaxPrice *float64
	Keyword  string
}

// ListingRepository persists listings with their nullable coordinates.
type ListingRepository interface {
	// Create inserts the listing, including its coordinates.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID returns the listing with its images ordered by position.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// Update writes the selected columns of the listing. listing carries the new values.
	Update(ctx context.Context, listing *entity.Listing, fields ListingUpdate) error

	// Delete removes the listing and, by cascade, its image rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns listings newest first together with the total count.
	List(ctx context.Context, filter ListingFilter, limit, offset int) ([]*entity.Listing, int64, error)

	// FindInBounds returns listings with both coordinates set that fall inside any of bounds.
	FindInBounds(ctx context.Context, bounds []orb.Bound, filter ListingFilter) ([]*entity.Listing, error)

	// FindMissingCoordinates returns listings with a non-empty location and unset
	// coordinates, ordered by ID, starting after afterID.
	FindMissingCoordinates(ctx context.Context, afterID uuid.UUID, limit int) ([]*entity.Listing, error)

	// SetCoordinatesIfLocation stores coordinates only while the listing's location
	// still equals location. It returns ErrLocationChanged otherwise.
	SetCoordinatesIfLocation(ctx context.Context, id uuid.UUID, location string, coordinates geo.Coordinates) error

	// ListImageKeysByOwner returns the storage keys of all images on the owner's listings.
	ListImageKeysByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error)
}
