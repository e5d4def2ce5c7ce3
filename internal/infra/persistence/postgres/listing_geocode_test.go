package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/geocoding"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newListingUsecase wires the listing service to a real SQLite store.
func newListingUsecase(t *testing.T, db *gorm.DB, geocoder service.Geocoder) usecase.ListingUsecase {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hook := impl.NewGeocodeHook(impl.GeocodeHookParams{Geocoder: geocoder, Logger: logger})

	return impl.NewListingService(impl.ListingServiceParams{
		TxManager:   NewTransactionManager(db),
		ListingRepo: NewListingRepository(db),
		Storage:     mockSvc.NewMockObjectStorage(t),
		Geocoder:    geocoder,
		Hook:        hook,
		Config:      cfg,
		Logger:      logger,
	})
}

func newStaticGeocoder(t *testing.T) service.Geocoder {
	t.Helper()

	g, err := geocoding.NewStaticGeocoder([]config.StaticPlaceConfig{
		{Address: "Cairo", Latitude: 30.0444, Longitude: 31.2357, DisplayAddress: "Cairo, Egypt"},
		{Address: "Alexandria", Latitude: 31.2001, Longitude: 29.9187},
	})
	require.NoError(t, err)

	return g
}

func TestListingGeocoding_CreateUpdateClear(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	owner := seedUser(t, db, "seller@example.com")
	listingUC := newListingUsecase(t, db, newStaticGeocoder(t))
	repo := NewListingRepository(db)

	created, err := listingUC.CreateListing(ctx, &usecase.CreateListingInput{
		OwnerID:  owner.ID,
		Name:     "Bike",
		Price:    50,
		Location: "  Cairo ",
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cairo", stored.Location)
	require.NotNil(t, stored.Coordinates)
	assert.InDelta(t, 30.0444, stored.Coordinates.Latitude, 1e-9)
	assert.InDelta(t, 31.2357, stored.Coordinates.Longitude, 1e-9)

	_, err = listingUC.UpdateListing(ctx, &usecase.UpdateListingInput{
		ListingID:   created.ID,
		RequesterID: owner.ID,
		Location:    ptr("Alexandria"),
	})
	require.NoError(t, err)

	stored, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Coordinates)
	assert.InDelta(t, 31.2001, stored.Coordinates.Latitude, 1e-9)

	_, err = listingUC.UpdateListing(ctx, &usecase.UpdateListingInput{
		ListingID:   created.ID,
		RequesterID: owner.ID,
		Location:    ptr(""),
	})
	require.NoError(t, err)

	stored, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Location)
	assert.Nil(t, stored.Coordinates)
}

func TestListingGeocoding_NoMatchSavesWithoutCoordinates(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	owner := seedUser(t, db, "seller@example.com")
	listingUC := newListingUsecase(t, db, newStaticGeocoder(t))

	created, err := listingUC.CreateListing(ctx, &usecase.CreateListingInput{
		OwnerID:  owner.ID,
		Name:     "Lamp",
		Price:    5,
		Location: "Atlantis",
	})
	require.NoError(t, err)

	stored, err := NewListingRepository(db).FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", stored.Location)
	assert.Nil(t, stored.Coordinates)
}

func TestListingGeocoding_ProviderErrorLeavesRowUntouched(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	owner := seedUser(t, db, "seller@example.com")

	geocoder := mockSvc.NewMockGeocoder(t)
	geocoder.EXPECT().Resolve(mock.Anything, "Cairo").
		Return(&service.GeocodeResult{Coordinates: cairo, DisplayAddress: "Cairo, Egypt", Provider: "static"}, nil).
		Once()
	geocoder.EXPECT().Resolve(mock.Anything, "Giza").
		Return(nil, service.NewGeocodeProviderError("static", errors.New("upstream down"))).
		Once()

	listingUC := newListingUsecase(t, db, geocoder)

	created, err := listingUC.CreateListing(ctx, &usecase.CreateListingInput{
		OwnerID:  owner.ID,
		Name:     "Bike",
		Price:    50,
		Location: "Cairo",
	})
	require.NoError(t, err)

	_, err = listingUC.UpdateListing(ctx, &usecase.UpdateListingInput{
		ListingID:   created.ID,
		RequesterID: owner.ID,
		Name:        ptr("Road bike"),
		Location:    ptr("Giza"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGeocodingUnavailable)

	stored, err := NewListingRepository(db).FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bike", stored.Name)
	assert.Equal(t, "Cairo", stored.Location)
	require.NotNil(t, stored.Coordinates)
	assert.Equal(t, cairo, *stored.Coordinates)
}
