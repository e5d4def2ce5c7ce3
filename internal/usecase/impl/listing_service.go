package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager    repository.TransactionManager
	listingRepo  repository.ListingRepository
	storage      service.ObjectStorage
	geocoder     service.Geocoder
	hook         usecase.GeocodeHook
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	Storage     service.ObjectStorage
	Geocoder    service.Geocoder
	Hook        usecase.GeocodeHook
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	defaultLimit, maxLimit := pageLimits(params.Config)

	return &listingService{
		txManager:    params.TxManager,
		listingRepo:  params.ListingRepo,
		storage:      params.Storage,
		geocoder:     params.Geocoder,
		hook:         params.Hook,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing geocodes the location, then inserts the listing with its coordinates.
func (srv *listingService) CreateListing(ctx context.Context, input *usecase.CreateListingInput) (*entity.Listing, error) {
	srv.log(ctx).Info("Creating listing", slog.Any("ownerID", input.OwnerID))

	name := strings.TrimSpace(input.Name)
	if err := validateListingFields(&name, &input.Price); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing id")
	}

	listing := &entity.Listing{
		ID:          id,
		OwnerID:     input.OwnerID,
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		Location:    input.Location,
	}

	if err := srv.hook.BeforeSave(ctx, "", listing); err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewListingRepository().Create(ctx, listing)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create listing", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created",
		slog.Any("listingID", listing.ID),
		slog.Bool("geocoded", listing.HasCoordinates()),
	)

	return listing, nil
}

// GetListing returns the listing with its images.
func (srv *listingService) GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	return srv.findListing(ctx, listingID)
}

// UpdateListing applies a partial update. Location changes go through the
// geocode hook before anything is written; a provider failure leaves the stored
// listing untouched, including the other fields of the same update.
func (srv *listingService) UpdateListing(ctx context.Context, input *usecase.UpdateListingInput) (*entity.Listing, error) {
	srv.log(ctx).Info("Updating listing", slog.Any("listingID", input.ListingID))

	current, err := srv.findOwnedListing(ctx, input.ListingID, input.RequesterID)
	if err != nil {
		return nil, err
	}

	updated := *current
	var fields repository.ListingUpdate

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		updated.Name = name
		fields.Name = &name
	}
	if input.Description != nil {
		updated.Description = *input.Description
		fields.Description = &updated.Description
	}
	if input.Price != nil {
		updated.Price = *input.Price
		fields.Price = &updated.Price
	}
	if err := validateListingFields(fields.Name, fields.Price); err != nil {
		return nil, err
	}

	if input.Location != nil {
		updated.Location = *input.Location
		if err := srv.hook.BeforeSave(ctx, current.Location, &updated); err != nil {
			return nil, err
		}
		// An unchanged location keeps the stored coordinates and is not written.
		if updated.Location != current.Location {
			fields.Location = &updated.Location
		}
	}

	if fields == (repository.ListingUpdate{}) {
		return current, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewListingRepository().Update(ctx, &updated, fields)
	})
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing deleted during update")
		}
		srv.log(ctx).Error("Failed to update listing", slog.Any("listingID", input.ListingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update listing")
	}

	return &updated, nil
}

// DeleteListing removes the listing row, its image rows by cascade, then the image objects.
func (srv *listingService) DeleteListing(ctx context.Context, listingID, requesterID uuid.UUID) error {
	srv.log(ctx).Info("Deleting listing", slog.Any("listingID", listingID))

	listing, err := srv.findOwnedListing(ctx, listingID, requesterID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewListingRepository().Delete(ctx, listingID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, "listing already deleted")
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	keys := make([]string, 0, len(listing.Images))
	for _, image := range listing.Images {
		keys = append(keys, image.StorageKey)
	}
	deleteObjects(ctx, srv.storage, srv.log(ctx), keys)

	return nil
}

// ListListings returns a page of listings, newest first.
func (srv *listingService) ListListings(ctx context.Context, input *usecase.ListListingsInput) (*usecase.ListingPage, error) {
	limit, offset, err := normalizePage(input.Limit, input.Offset, srv.defaultLimit, srv.maxLimit)
	if err != nil {
		return nil, err
	}

	filter := repository.ListingFilter{
		OwnerID:  input.OwnerID,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Keyword:  strings.TrimSpace(input.Keyword),
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	items, total, err := srv.listingRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return &usecase.ListingPage{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (srv *listingService) findListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "failed to find listing")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

func (srv *listingService) findOwnedListing(ctx context.Context, listingID, requesterID uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != requesterID {
		srv.log(ctx).Warn("Listing ownership violation",
			slog.Any("listingID", listingID),
			slog.Any("requesterID", requesterID),
		)

		return nil, errors.Wrap(domainerrors.ErrListingOwnershipViolation, "listing belongs to another user")
	}

	return listing, nil
}

// validateListingFields checks the fields that are present. Nil means "not part of this write".
func validateListingFields(name *string, price *float64) error {
	if name != nil && *name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if price != nil && (math.IsNaN(*price) || math.IsInf(*price, 0) || *price < 0) {
		return domainerrors.ErrValidationFailed.WithDetails("price must be a non-negative number")
	}

	return nil
}

func validateFilter(filter repository.ListingFilter) error {
	if filter.MinPrice != nil && *filter.MinPrice < 0 {
		return domainerrors.ErrInvalidInput.WithDetails("min_price must not be negative")
	}
	if filter.MaxPrice != nil && *filter.MaxPrice < 0 {
		return domainerrors.ErrInvalidInput.WithDetails("max_price must not be negative")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return domainerrors.ErrInvalidInput.WithDetails("min_price must not exceed max_price")
	}

	return nil
}

// normalizePage applies the default limit to 0 and caps it at maxLimit.
func normalizePage(limit, offset, defaultLimit, maxLimit int) (int, int, error) {
	if limit < 0 || offset < 0 {
		return 0, 0, domainerrors.ErrInvalidInput.WithDetails("limit and offset must not be negative")
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return limit, offset, nil
}

func pageLimits(cfg *config.Config) (int, int) {
	defaultLimit, maxLimit := 20, 100
	if cfg != nil && cfg.Search != nil {
		if cfg.Search.DefaultLimit > 0 {
			defaultLimit = cfg.Search.DefaultLimit
		}
		if cfg.Search.MaxLimit > 0 {
			maxLimit = cfg.Search.MaxLimit
		}
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}

	return defaultLimit, maxLimit
}

// deleteObjects removes image objects after their rows are gone. Failures leave
// orphaned objects behind and are only logged.
func deleteObjects(ctx context.Context, storage service.ObjectStorage, logger *slog.Logger, keys []string) {
	for _, key := range keys {
		if err := storage.Delete(ctx, key); err != nil {
			logger.Warn("Failed to delete image object", slog.String("key", key), slog.Any("error", err))
		}
	}
}
