package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultBackfillBatchSize = 100

// BackfillCoordinates walks listings with a location but no coordinates in ID
// order and resolves them one at a time. Coordinates are written only while the
// location is still the one that was resolved, so a concurrent edit wins. A
// provider failure stops the run; rows already written stay written.
func (srv *listingService) BackfillCoordinates(ctx context.Context, batchSize int) (*usecase.BackfillResult, error) {
	if batchSize <= 0 {
		batchSize = defaultBackfillBatchSize
	}

	started := time.Now()
	result := &usecase.BackfillResult{}
	afterID := uuid.Nil

	srv.log(ctx).Info("Starting coordinate backfill", slog.Int("batchSize", batchSize))

	for {
		batch, err := srv.listingRepo.FindMissingCoordinates(ctx, afterID, batchSize)
		if err != nil {
			return result, errors.Wrap(err, "failed to load listings without coordinates")
		}

		for _, listing := range batch {
			afterID = listing.ID
			result.Scanned++

			geocoded, err := srv.geocoder.Resolve(ctx, listing.Location)
			if err != nil {
				if errors.Is(err, service.ErrGeocodeNoMatch) || errors.Is(err, service.ErrGeocodeInvalidInput) {
					result.NoMatch++

					continue
				}
				srv.log(ctx).Error("Backfill stopped by geocoding failure",
					slog.Any("listingID", listing.ID),
					slog.Any("error", err),
				)

				return result, domainerrors.ErrGeocodingUnavailable.WrapMessage("coordinate backfill interrupted")
			}

			err = srv.listingRepo.SetCoordinatesIfLocation(ctx, listing.ID, listing.Location, geocoded.Coordinates)
			switch {
			case err == nil:
				result.Resolved++
			case errors.Is(err, repository.ErrLocationChanged), errors.Is(err, repository.ErrListingNotFound):
				result.Skipped++
			default:
				return result, errors.Wrap(err, "failed to store backfilled coordinates")
			}
		}

		if len(batch) < batchSize {
			break
		}
	}

	srv.log(ctx).Info("Coordinate backfill finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("resolved", result.Resolved),
		slog.Int("noMatch", result.NoMatch),
		slog.Int("skipped", result.Skipped),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	return result, nil
}
