package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table.
// Latitude and Longitude are NULL together; the composite index serves bounding-box scans.
type ListingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(12,2);not null;check:chk_listings_price,price >= 0"`
	Location    string    `gorm:"type:varchar(500);not null"`
	Latitude    *float64  `gorm:"type:double precision;index:idx_listings_on_coordinates,priority:1"`
	Longitude   *float64  `gorm:"type:double precision;index:idx_listings_on_coordinates,priority:2"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Owner  *UserModel          `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Images []ListingImageModel `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// ListingImageModel mirrors the 'listing_images' table. The bytes live in object storage.
type ListingImageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID   uuid.UUID `gorm:"type:uuid;not null;index:idx_listing_images_listing_position,priority:1"`
	StorageKey  string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	SizeBytes   int64     `gorm:"not null"`
	Position    int       `gorm:"not null;index:idx_listing_images_listing_position,priority:2"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingImageModel) TableName() string {
	return "listing_images"
}

// AllModels lists every persistence model in dependency order, for AutoMigrate.
func AllModels() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&ListingModel{},
		&ListingImageModel{},
	}
}
