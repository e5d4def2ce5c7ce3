package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/repository"
)

// NearQuery asks for listings within RadiusKm of a point.
type NearQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Filter    repository.ListingFilter
	Limit     int // 0 selects the configured default
	Offset    int
}

// NearResult is one page of matches ordered by distance, then listing ID.
type NearResult struct {
	Items    []*entity.NearbyListing
	Total    int
	Center   geo.Coordinates
	RadiusKm float64
	Limit    int
	Offset   int
}

// SearchQuery asks for listings near a free-text address.
type SearchQuery struct {
	Text     string
	RadiusKm float64 // 0 selects the configured default
	Filter   repository.ListingFilter
	Limit    int
	Offset   int
}

// SearchResult is a NearResult for the resolved address. Center is nil when
// the address did not resolve, in which case Items is empty.
type SearchResult struct {
	Query           string
	ResolvedAddress string
	Center          *geo.Coordinates
	RadiusKm        float64
	Items           []*entity.NearbyListing
	Total           int
	Limit           int
	Offset          int
}

// ProximityUsecase answers point-radius queries over geocoded listings.
type ProximityUsecase interface {
	FindNear(ctx context.Context, query *NearQuery) (*NearResult, error)
	Search(ctx context.Context, query *SearchQuery) (*SearchResult, error)
}
