package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateListingInput is a new listing as submitted by its owner.
// Coordinates are never accepted from clients; they follow from Location.
type CreateListingInput struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	Price       float64
	Location    string
}

// UpdateListingInput carries a partial update. Nil fields are left untouched.
type UpdateListingInput struct {
	ListingID   uuid.UUID
	RequesterID uuid.UUID
	Name        *string
	Description *string
	Price       *float64
	Location    *string
}

// ListListingsInput selects a page of the listing index.
type ListListingsInput struct {
	OwnerID  *uuid.UUID
	Keyword  string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}

// ListingPage is one page of listings, newest first.
type ListingPage struct {
	Items  []*entity.Listing
	Total  int64
	Limit  int
	Offset int
}

// BackfillResult summarises a coordinate backfill run.
type BackfillResult struct {
	Scanned  int
	Resolved int
	NoMatch  int
	Skipped  int // location edited or listing deleted while the run was in flight
}

// GeocodeHook resolves a listing's location before it is written.
type GeocodeHook interface {
	// BeforeSave compares listing.Location with persistedLocation ("" on create) and,
	// when they differ, sets or clears listing.Coordinates. A provider failure is
	// returned and the caller must not write the listing.
	BeforeSave(ctx context.Context, persistedLocation string, listing *entity.Listing) error
}

// ListingUsecase manages listings owned by users.
type ListingUsecase interface {
	CreateListing(ctx context.Context, input *CreateListingInput) (*entity.Listing, error)
	GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error)
	UpdateListing(ctx context.Context, input *UpdateListingInput) (*entity.Listing, error)
	DeleteListing(ctx context.Context, listingID, requesterID uuid.UUID) error
	ListListings(ctx context.Context, input *ListListingsInput) (*ListingPage, error)

	// BackfillCoordinates geocodes listings whose location is set but whose
	// coordinates are not, batchSize rows at a time.
	BackfillCoordinates(ctx context.Context, batchSize int) (*BackfillResult, error)
}
