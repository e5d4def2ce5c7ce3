package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingService_BackfillCoordinates(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	a := newOwnedListing(ownerID, "Cairo, Egypt", nil)
	b := newOwnedListing(ownerID, "Atlantis", nil)
	c := newOwnedListing(ownerID, "Giza, Egypt", nil)
	giza := geo.Coordinates{Latitude: 30.0131, Longitude: 31.2089}

	fx.listingRepo.EXPECT().FindMissingCoordinates(ctx, uuid.Nil, 2).Return([]*entity.Listing{a, b}, nil).Once()
	fx.listingRepo.EXPECT().FindMissingCoordinates(ctx, b.ID, 2).Return([]*entity.Listing{c}, nil).Once()

	fx.geocoder.EXPECT().Resolve(ctx, "Cairo, Egypt").Return(cairoResult(), nil).Once()
	fx.geocoder.EXPECT().Resolve(ctx, "Atlantis").Return(nil, service.ErrGeocodeNoMatch).Once()
	fx.geocoder.EXPECT().Resolve(ctx, "Giza, Egypt").Return(&service.GeocodeResult{Coordinates: giza}, nil).Once()

	fx.listingRepo.EXPECT().SetCoordinatesIfLocation(ctx, a.ID, "Cairo, Egypt", cairo).Return(nil).Once()
	// c was edited after it was read; the edit wins.
	fx.listingRepo.EXPECT().SetCoordinatesIfLocation(ctx, c.ID, "Giza, Egypt", giza).Return(repository.ErrLocationChanged).Once()

	result, err := fx.service.BackfillCoordinates(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 1, result.Resolved)
	assert.Equal(t, 1, result.NoMatch)
	assert.Equal(t, 1, result.Skipped)
}

func TestListingService_BackfillCoordinates_ProviderErrorStops(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	a := newOwnedListing(ownerID, "Cairo, Egypt", nil)
	b := newOwnedListing(ownerID, "Giza, Egypt", nil)

	fx.listingRepo.EXPECT().FindMissingCoordinates(ctx, uuid.Nil, defaultBackfillBatchSize).Return([]*entity.Listing{a, b}, nil).Once()
	fx.geocoder.EXPECT().Resolve(ctx, "Cairo, Egypt").Return(cairoResult(), nil).Once()
	fx.listingRepo.EXPECT().SetCoordinatesIfLocation(ctx, a.ID, "Cairo, Egypt", cairo).Return(nil).Once()
	fx.geocoder.EXPECT().
		Resolve(ctx, "Giza, Egypt").
		Return(nil, service.NewGeocodeProviderError("nominatim", errors.New("429 Too Many Requests"))).
		Once()

	result, err := fx.service.BackfillCoordinates(ctx, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGeocodingUnavailable)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Resolved)
}

func TestListingService_BackfillCoordinates_StoreError(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().FindMissingCoordinates(ctx, uuid.Nil, 10).Return(nil, errors.New("db down")).Once()

	_, err := fx.service.BackfillCoordinates(ctx, 10)
	require.Error(t, err)
}
