package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type listingImageRepository struct {
	db *gorm.DB
}

// NewListingImageRepository is the constructor for listingImageRepository.
func NewListingImageRepository(db *gorm.DB) repository.ListingImageRepository {
	return &listingImageRepository{db: db}
}

func (repo *listingImageRepository) Create(ctx context.Context, image *entity.ListingImage) error {
	imageM := fromListingImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingNotFound.WrapMessage("image listing does not exist")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("image storage key already used")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing image")
	}

	image.CreatedAt = imageM.CreatedAt

	return nil
}

func (repo *listingImageRepository) FindByID(ctx context.Context, listingID, imageID uuid.UUID) (*entity.ListingImage, error) {
	var imageM model.ListingImageModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND listing_id = ?", imageID, listingID).
		First(&imageM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing image")
	}

	return toListingImageDomain(&imageM), nil
}

func (repo *listingImageRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*entity.ListingImage, error) {
	var imageModels []model.ListingImageModel
	err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("position ASC").
		Find(&imageModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listing images")
	}

	images := make([]*entity.ListingImage, 0, len(imageModels))
	for i := range imageModels {
		images = append(images, toListingImageDomain(&imageModels[i]))
	}

	return images, nil
}

func (repo *listingImageRepository) CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ListingImageModel{}).Where("listing_id = ?", listingID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count listing images")
	}

	return count, nil
}

func (repo *listingImageRepository) Delete(ctx context.Context, listingID, imageID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND listing_id = ?", imageID, listingID).
		Delete(&model.ListingImageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toListingImageDomain(data *model.ListingImageModel) *entity.ListingImage {
	if data == nil {
		return nil
	}

	return &entity.ListingImage{
		ID:          data.ID,
		ListingID:   data.ListingID,
		StorageKey:  data.StorageKey,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt,
	}
}

func fromListingImageDomain(data *entity.ListingImage) *model.ListingImageModel {
	if data == nil {
		return nil
	}

	return &model.ListingImageModel{
		ID:          data.ID,
		ListingID:   data.ListingID,
		StorageKey:  data.StorageKey,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt,
	}
}
