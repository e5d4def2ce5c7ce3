package postgres

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the domain.ListingRepository interface using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// Create inserts the listing. location, latitude and longitude go out in the same INSERT.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Omit("Owner", "Images").Create(listingM).Error; err != nil {
		return translateListingWriteError(err, "failed to create listing")
	}

	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID returns the listing with its images ordered by position.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&listingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

// Update writes only the selected columns in a single UPDATE. Selecting the
// location always writes both coordinate columns with it, NULL when unset.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing, fields repository.ListingUpdate) error {
	now := time.Now()
	values := map[string]any{"updated_at": now}

	if fields.Name != nil {
		values["name"] = *fields.Name
	}
	if fields.Description != nil {
		values["description"] = *fields.Description
	}
	if fields.Price != nil {
		values["price"] = *fields.Price
	}
	if fields.Location != nil {
		lat, lng := coordinateColumns(listing.Coordinates)
		values["location"] = *fields.Location
		values["latitude"] = lat
		values["longitude"] = lng
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", listing.ID).
		Updates(values)
	if result.Error != nil {
		return translateListingWriteError(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	listing.UpdatedAt = now

	return nil
}

// Delete removes the listing; image rows follow through ON DELETE CASCADE.
func (repo *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ListingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// List returns listings newest first together with the total count.
func (repo *listingRepository) List(ctx context.Context, filter repository.ListingFilter, limit, offset int) ([]*entity.Listing, int64, error) {
	base := applyListingFilter(repo.db.WithContext(ctx).Model(&model.ListingModel{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count listings")
	}

	var listingModels []*model.ListingModel
	err := base.Session(&gorm.Session{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&listingModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list listings")
	}

	return toListingDomains(listingModels), total, nil
}

// FindInBounds returns listings with both coordinates set inside any of bounds.
// The predicate is a plain range scan on (latitude, longitude) so the composite
// index can serve it; callers refine by exact distance.
func (repo *listingRepository) FindInBounds(ctx context.Context, bounds []orb.Bound, filter repository.ListingFilter) ([]*entity.Listing, error) {
	if len(bounds) == 0 {
		return []*entity.Listing{}, nil
	}

	boxes := make([]string, 0, len(bounds))
	args := make([]any, 0, len(bounds)*4)
	for _, b := range bounds {
		boxes = append(boxes, "(latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?)")
		args = append(args, b.Min.Lat(), b.Max.Lat(), b.Min.Lon(), b.Max.Lon())
	}

	query := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("("+strings.Join(boxes, " OR ")+")", args...)

	var listingModels []*model.ListingModel
	if err := applyListingFilter(query, filter).Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings in bounds")
	}

	return toListingDomains(listingModels), nil
}

// FindMissingCoordinates pages through geocodable listings without coordinates in ID order.
func (repo *listingRepository) FindMissingCoordinates(ctx context.Context, afterID uuid.UUID, limit int) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel
	err := repo.db.WithContext(ctx).
		Where("location <> ''").
		Where("(latitude IS NULL OR longitude IS NULL)").
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&listingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings without coordinates")
	}

	return toListingDomains(listingModels), nil
}

// SetCoordinatesIfLocation is a compare-and-set on the location text: a
// concurrent edit of the location wins over a stale geocode.
func (repo *listingRepository) SetCoordinatesIfLocation(ctx context.Context, id uuid.UUID, location string, coordinates geo.Coordinates) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND location = ?", id, location).
		Updates(map[string]any{
			"latitude":   coordinates.Latitude,
			"longitude":  coordinates.Longitude,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set listing coordinates")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.ListingModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check listing")
		}
		if count == 0 {
			return repository.ErrListingNotFound
		}

		return repository.ErrLocationChanged
	}

	return nil
}

// ListImageKeysByOwner returns the storage keys of every image on the owner's listings.
func (repo *listingRepository) ListImageKeysByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	var keys []string
	err := repo.db.WithContext(ctx).
		Model(&model.ListingImageModel{}).
		Joins("JOIN listings ON listings.id = listing_images.listing_id").
		Where("listings.owner_id = ?", ownerID).
		Pluck("listing_images.storage_key", &keys).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list image keys")
	}

	return keys, nil
}

func applyListingFilter(query *gorm.DB, filter repository.ListingFilter) *gorm.DB {
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	}

	return query
}

func translateListingWriteError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrUserNotFound.WrapMessage("listing owner does not exist")
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing required listing information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func coordinateColumns(c *geo.Coordinates) (lat, lng *float64) {
	if c == nil {
		return nil, nil
	}

	return &c.Latitude, &c.Longitude
}

// --- Mapper Functions ---

func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	listing := &entity.Listing{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Location:    data.Location,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	// A half-set pair is treated as unset.
	if data.Latitude != nil && data.Longitude != nil {
		listing.Coordinates = &geo.Coordinates{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	if len(data.Images) > 0 {
		listing.Images = make([]*entity.ListingImage, 0, len(data.Images))
		for i := range data.Images {
			listing.Images = append(listing.Images, toListingImageDomain(&data.Images[i]))
		}
	}

	return listing
}

func toListingDomains(data []*model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(data))
	for _, listingM := range data {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	lat, lng := coordinateColumns(data.Coordinates)

	return &model.ListingModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Location:    data.Location,
		Latitude:    lat,
		Longitude:   lng,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
