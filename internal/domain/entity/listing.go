// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"marketplace/internal/domain/geo"

	"github.com/google/uuid"
)

// Listing is an item offered on the marketplace by its owning user.
type Listing struct {
	ID          uuid.UUID        `json:"id"`                    // Time-ordered (v7) identifier, also the distance tie-breaker.
	OwnerID     uuid.UUID        `json:"owner_id"`              // The user that owns and may edit the listing.
	Name        string           `json:"name"`                  // Short title shown in result lists.
	Description string           `json:"description"`           // Rich-text body, stored as sanitized-by-client HTML.
	Price       float64          `json:"price"`                 // Asking price, non-negative, two fraction digits.
	Location    string           `json:"location"`              // Free-text address as entered by the owner.
	Coordinates *geo.Coordinates `json:"coordinates,omitempty"` // Resolved position of Location; nil when unresolved.
	Images      []*ListingImage  `json:"images,omitempty"`      // Attached images ordered by position.
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// HasCoordinates reports whether the listing can take part in proximity searches.
func (l *Listing) HasCoordinates() bool {
	return l.Coordinates != nil
}

// ClearCoordinates unsets latitude and longitude together.
func (l *Listing) ClearCoordinates() {
	l.Coordinates = nil
}

// SetCoordinates sets latitude and longitude together.
func (l *Listing) SetCoordinates(c geo.Coordinates) {
	l.Coordinates = &c
}

// NormalizeLocation trims the free-text location the way it is persisted.
func NormalizeLocation(location string) string {
	return strings.TrimSpace(location)
}

// NearbyListing is a listing matched by a proximity query.
type NearbyListing struct {
	Listing    *Listing `json:"listing"`
	DistanceKm float64  `json:"distance_km"`
}
