package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// geocodeHook keeps a listing's coordinates in step with its location.
type geocodeHook struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// GeocodeHookParams holds dependencies for the geocode hook, injected by Fx.
type GeocodeHookParams struct {
	fx.In

	Geocoder service.Geocoder
	Logger   *slog.Logger
}

// NewGeocodeHook is the constructor for geocodeHook.
func NewGeocodeHook(params GeocodeHookParams) usecase.GeocodeHook {
	return &geocodeHook{
		geocoder: params.Geocoder,
		logger:   params.Logger,
	}
}

func (h *geocodeHook) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// BeforeSave normalizes listing.Location and, only when it differs from
// persistedLocation, resolves it. No match clears the coordinates and lets the
// write go ahead; a provider failure aborts it.
func (h *geocodeHook) BeforeSave(ctx context.Context, persistedLocation string, listing *entity.Listing) error {
	listing.Location = entity.NormalizeLocation(listing.Location)
	if listing.Location == entity.NormalizeLocation(persistedLocation) {
		return nil
	}

	if listing.Location == "" {
		listing.ClearCoordinates()

		return nil
	}

	result, err := h.geocoder.Resolve(ctx, listing.Location)
	switch {
	case err == nil:
		listing.SetCoordinates(result.Coordinates)
		h.log(ctx).Debug("Resolved listing location",
			slog.Any("listingID", listing.ID),
			slog.String("provider", result.Provider),
			slog.Float64("latitude", result.Coordinates.Latitude),
			slog.Float64("longitude", result.Coordinates.Longitude),
		)

		return nil
	case errors.Is(err, service.ErrGeocodeNoMatch), errors.Is(err, service.ErrGeocodeInvalidInput):
		listing.ClearCoordinates()
		h.log(ctx).Info("Listing location did not resolve, coordinates cleared",
			slog.Any("listingID", listing.ID),
			slog.String("location", listing.Location),
		)

		return nil
	default:
		h.log(ctx).Warn("Geocoding failed, listing not saved",
			slog.Any("listingID", listing.ID),
			slog.String("location", listing.Location),
			slog.Any("error", err),
		)

		return domainerrors.ErrGeocodingUnavailable.WrapMessage("failed to resolve listing location")
	}
}
