package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	gommonbytes "github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxImageSize        = 5 * gommonbytes.MB
	defaultMaxImagesPerListing = 10
)

// imageExtensions lists the accepted content types, as sniffed from the bytes.
var imageExtensions = map[string]string{ //nolint:gochecknoglobals
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// imageService implements the ImageUsecase interface.
type imageService struct {
	txManager     repository.TransactionManager
	listingRepo   repository.ListingRepository
	imageRepo     repository.ListingImageRepository
	storage       service.ObjectStorage
	maxSize       int64
	maxSizeLabel  string
	maxPerListing int
	logger        *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	ImageRepo   repository.ListingImageRepository
	Storage     service.ObjectStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) (usecase.ImageUsecase, error) {
	maxSize := int64(defaultMaxImageSize)
	maxSizeLabel := gommonbytes.FormatDecimal(maxSize)
	maxPerListing := defaultMaxImagesPerListing

	if params.Config != nil && params.Config.Storage != nil {
		if params.Config.Storage.MaxImageSize != "" {
			parsed, err := gommonbytes.Parse(params.Config.Storage.MaxImageSize)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid storage.maxImageSize %q", params.Config.Storage.MaxImageSize)
			}
			maxSize = parsed
			maxSizeLabel = params.Config.Storage.MaxImageSize
		}
		if params.Config.Storage.MaxImagesPerListing > 0 {
			maxPerListing = params.Config.Storage.MaxImagesPerListing
		}
	}

	return &imageService{
		txManager:     params.TxManager,
		listingRepo:   params.ListingRepo,
		imageRepo:     params.ImageRepo,
		storage:       params.Storage,
		maxSize:       maxSize,
		maxSizeLabel:  maxSizeLabel,
		maxPerListing: maxPerListing,
		logger:        params.Logger,
	}, nil
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AttachImage stores the image object and then its row. If the row cannot be
// written the object is removed again.
func (srv *imageService) AttachImage(ctx context.Context, input *usecase.AttachImageInput) (*entity.ListingImage, error) {
	srv.log(ctx).Info("Attaching image", slog.Any("listingID", input.ListingID), slog.Int("size", len(input.Data)))

	if len(input.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is empty")
	}
	if int64(len(input.Data)) > srv.maxSize {
		return nil, domainerrors.ErrImageTooLarge.WithDetails("images are limited to " + srv.maxSizeLabel)
	}

	contentType := http.DetectContentType(input.Data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedImage.WithDetails("got " + contentType)
	}

	listing, err := srv.ownedListing(ctx, input.ListingID, input.RequesterID)
	if err != nil {
		return nil, err
	}
	if len(listing.Images) >= srv.maxPerListing {
		return nil, domainerrors.ErrImageLimitReached.WithDetails(
			"a listing holds at most " + strconv.Itoa(srv.maxPerListing) + " images")
	}

	imageID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate image id")
	}

	position := 0
	if n := len(listing.Images); n > 0 {
		position = listing.Images[n-1].Position + 1
	}

	image := &entity.ListingImage{
		ID:          imageID,
		ListingID:   listing.ID,
		StorageKey:  "listings/" + listing.ID.String() + "/" + imageID.String() + ext,
		ContentType: contentType,
		SizeBytes:   int64(len(input.Data)),
		Position:    position,
	}

	if err := srv.storage.Put(ctx, image.StorageKey, contentType, input.Data); err != nil {
		srv.log(ctx).Error("Failed to store image object", slog.String("key", image.StorageKey), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		imageRepo := repoFactory.NewListingImageRepository()

		count, err := imageRepo.CountByListing(ctx, listing.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count images")
		}
		if count >= int64(srv.maxPerListing) {
			return domainerrors.ErrImageLimitReached.WithDetails("limit reached by a concurrent upload")
		}

		return imageRepo.Create(ctx, image)
	})
	if err != nil {
		deleteObjects(ctx, srv.storage, srv.log(ctx), []string{image.StorageKey})

		return nil, errors.Wrap(err, "failed to save image")
	}

	return image, nil
}

// OpenImage returns the image metadata and a reader over its bytes.
func (srv *imageService) OpenImage(ctx context.Context, listingID, imageID uuid.UUID) (*usecase.ImageContent, error) {
	image, err := srv.findImage(ctx, listingID, imageID)
	if err != nil {
		return nil, err
	}

	body, _, err := srv.storage.Open(ctx, image.StorageKey)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			srv.log(ctx).Warn("Image row without object", slog.String("key", image.StorageKey))

			return nil, errors.Wrap(domainerrors.ErrImageNotFound, "image object missing")
		}

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return &usecase.ImageContent{Image: image, Body: body}, nil
}

// DeleteImage removes the image row, then its object.
func (srv *imageService) DeleteImage(ctx context.Context, listingID, imageID, requesterID uuid.UUID) error {
	if _, err := srv.ownedListing(ctx, listingID, requesterID); err != nil {
		return err
	}

	image, err := srv.findImage(ctx, listingID, imageID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewListingImageRepository().Delete(ctx, listingID, imageID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return errors.Wrap(domainerrors.ErrImageNotFound, "image already deleted")
		}

		return errors.Wrap(err, "failed to delete image")
	}

	deleteObjects(ctx, srv.storage, srv.log(ctx), []string{image.StorageKey})

	return nil
}

func (srv *imageService) findImage(ctx context.Context, listingID, imageID uuid.UUID) (*entity.ListingImage, error) {
	image, err := srv.imageRepo.FindByID(ctx, listingID, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrImageNotFound, "failed to find image")
		}

		return nil, errors.Wrap(err, "failed to find image")
	}

	return image, nil
}

func (srv *imageService) ownedListing(ctx context.Context, listingID, requesterID uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "failed to find listing")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if listing.OwnerID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrListingOwnershipViolation, "listing belongs to another user")
	}

	return listing, nil
}
