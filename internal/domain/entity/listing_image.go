package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingImage is an image attached to a listing. The bytes live in object storage under StorageKey.
type ListingImage struct {
	ID          uuid.UUID `json:"id"`
	ListingID   uuid.UUID `json:"listing_id"`
	StorageKey  string    `json:"-"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}
