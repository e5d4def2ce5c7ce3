package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cairo = geo.Coordinates{Latitude: 30.0444, Longitude: 31.2357}

func TestListingRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller@example.com")
	repo := NewListingRepository(db)

	withCoords := newListing(owner.ID, "Bike", "Cairo")
	withCoords.Description = "<p>Red <b>bike</b></p>"
	withCoords.Price = 125.5
	withCoords.SetCoordinates(cairo)
	require.NoError(t, repo.Create(ctx, withCoords))
	assert.False(t, withCoords.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, withCoords.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bike", got.Name)
	assert.Equal(t, "<p>Red <b>bike</b></p>", got.Description)
	assert.InDelta(t, 125.5, got.Price, 1e-9)
	require.NotNil(t, got.Coordinates)
	assert.InDelta(t, cairo.Latitude, got.Coordinates.Latitude, 1e-9)
	assert.InDelta(t, cairo.Longitude, got.Coordinates.Longitude, 1e-9)

	without := newListing(owner.ID, "Lamp", "")
	require.NoError(t, repo.Create(ctx, without))

	got, err = repo.FindByID(ctx, without.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Coordinates)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestListingRepository_CreateRejectsUnknownOwner(t *testing.T) {
	db := newTestDB(t)

	err := NewListingRepository(db).Create(context.Background(), newListing(uuid.New(), "Ghost", ""))
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestListingRepository_UpdateWritesCoordinatesWithLocation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller@example.com")
	repo := NewListingRepository(db)

	listing := newListing(owner.ID, "Bike", "Cairo")
	listing.SetCoordinates(cairo)
	require.NoError(t, repo.Create(ctx, listing))

	// Name-only update leaves location and coordinates alone even if the entity says otherwise.
	listing.Name = "Blue bike"
	listing.ClearCoordinates()
	require.NoError(t, repo.Update(ctx, listing, repository.ListingUpdate{Name: ptr("Blue bike")}))

	got, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue bike", got.Name)
	assert.Equal(t, "Cairo", got.Location)
	require.NotNil(t, got.Coordinates)

	// Clearing the location writes NULL to both coordinate columns.
	listing.Location = ""
	require.NoError(t, repo.Update(ctx, listing, repository.ListingUpdate{Location: ptr("")}))

	var row model.ListingModel
	require.NoError(t, db.Where("id = ?", listing.ID).First(&row).Error)
	assert.Empty(t, row.Location)
	assert.Nil(t, row.Latitude)
	assert.Nil(t, row.Longitude)

	// A new location writes both columns together.
	giza := geo.Coordinates{Latitude: 30.0131, Longitude: 31.2089}
	listing.Location = "Giza"
	listing.SetCoordinates(giza)
	require.NoError(t, repo.Update(ctx, listing, repository.ListingUpdate{Location: ptr("Giza")}))

	require.NoError(t, db.Where("id = ?", listing.ID).First(&row).Error)
	require.NotNil(t, row.Latitude)
	require.NotNil(t, row.Longitude)
	assert.InDelta(t, giza.Latitude, *row.Latitude, 1e-9)
	assert.InDelta(t, giza.Longitude, *row.Longitude, 1e-9)

	missing := newListing(owner.ID, "x", "")
	err = repo.Update(ctx, missing, repository.ListingUpdate{Name: ptr("y")})
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestListingRepository_FindInBounds(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller@example.com")
	other := seedUser(t, db, "other@example.com")
	repo := NewListingRepository(db)

	near := newListing(owner.ID, "Near bike", "Cairo")
	near.SetCoordinates(geo.Coordinates{Latitude: 30.05, Longitude: 31.24})
	near.Price = 50
	require.NoError(t, repo.Create(ctx, near))

	otherOwner := newListing(other.ID, "Other lamp", "Cairo")
	otherOwner.SetCoordinates(cairo)
	otherOwner.Price = 500
	require.NoError(t, repo.Create(ctx, otherOwner))

	far := newListing(owner.ID, "Far bike", "Alexandria")
	far.SetCoordinates(geo.Coordinates{Latitude: 31.2001, Longitude: 29.9187})
	require.NoError(t, repo.Create(ctx, far))

	unresolved := newListing(owner.ID, "Mystery", "somewhere")
	require.NoError(t, repo.Create(ctx, unresolved))

	bounds := geo.BoundingBoxes(cairo, 10)

	found, err := repo.FindInBounds(ctx, bounds, repository.ListingFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{near.ID, otherOwner.ID}, listingIDs(found))

	found, err = repo.FindInBounds(ctx, bounds, repository.ListingFilter{OwnerID: &owner.ID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{near.ID}, listingIDs(found))

	found, err = repo.FindInBounds(ctx, bounds, repository.ListingFilter{MinPrice: ptr(100.0), MaxPrice: ptr(1000.0)})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{otherOwner.ID}, listingIDs(found))

	found, err = repo.FindInBounds(ctx, bounds, repository.ListingFilter{Keyword: "BIKE"})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{near.ID}, listingIDs(found))

	found, err = repo.FindInBounds(ctx, nil, repository.ListingFilter{})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestListingRepository_FindInBoundsAcrossAntimeridian(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller@example.com")
	repo := NewListingRepository(db)

	west := newListing(owner.ID, "West", "Fiji west")
	west.SetCoordinates(geo.Coordinates{Latitude: -17, Longitude: 179.99})
	require.NoError(t, repo.Create(ctx, west))

	east := newListing(owner.ID, "East", "Fiji east")
	east.SetCoordinates(geo.Coordinates{Latitude: -17, Longitude: -179.99})
	require.NoError(t, repo.Create(ctx, east))

	bounds := geo.BoundingBoxes(geo.Coordinates{Latitude: -17, Longitude: 179.95}, 20)
	found, err := repo.FindInBounds(ctx, bounds, repository.ListingFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{west.ID, east.ID}, listingIDs(found))
}

func TestListingRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller@example.com")
	other := seedUser(t, db, "other@example.com")
	repo := NewListingRepository(db)

	var ids []uuid.UUID
	for _, name := range []string{"first", "second", "third"} {
		l := newListing(owner.ID, name, "")
		require.NoError(t, repo.Create(ctx, l))
		ids = append(ids, l.ID)
		waitTick()
	}
	require.NoError(t, repo.Create(ctx, newListing(other.ID, "foreign", "")))

	page, total, err := repo.List(ctx, repository.ListingFilter{OwnerID: &owner.ID}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []uuid.UUID{ids[2], ids[1]}, listingIDs(page))

	page, total, err = repo.List(ctx, repository.ListingFilter{OwnerID: &owner.ID}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []uuid.UUID{ids[0]}, listingIDs(page))

	_, total, err = repo.List(ctx, repository.ListingFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestListingRepository_Backfill(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller@example.com")
	repo := NewListingRepository(db)

	pending := newListing(owner.ID, "Pending", "Cairo")
	require.NoError(t, repo.Create(ctx, pending))

	resolved := newListing(owner.ID, "Resolved", "Giza")
	resolved.SetCoordinates(cairo)
	require.NoError(t, repo.Create(ctx, resolved))

	require.NoError(t, repo.Create(ctx, newListing(owner.ID, "No location", "")))

	missing, err := repo.FindMissingCoordinates(ctx, uuid.Nil, 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{pending.ID}, listingIDs(missing))

	missing, err = repo.FindMissingCoordinates(ctx, pending.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, missing)

	// Stale location loses the compare-and-set.
	err = repo.SetCoordinatesIfLocation(ctx, pending.ID, "Old address", cairo)
	assert.ErrorIs(t, err, repository.ErrLocationChanged)

	err = repo.SetCoordinatesIfLocation(ctx, uuid.New(), "Cairo", cairo)
	assert.ErrorIs(t, err, repository.ErrListingNotFound)

	require.NoError(t, repo.SetCoordinatesIfLocation(ctx, pending.ID, "Cairo", cairo))
	got, err := repo.FindByID(ctx, pending.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Coordinates)
	assert.InDelta(t, cairo.Latitude, got.Coordinates.Latitude, 1e-9)
}

func TestListingRepository_DeleteCascadesImages(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller@example.com")
	repo := NewListingRepository(db)
	images := NewListingImageRepository(db)

	listing := newListing(owner.ID, "Bike", "")
	require.NoError(t, repo.Create(ctx, listing))
	require.NoError(t, images.Create(ctx, &entity.ListingImage{
		ID: uuid.Must(uuid.NewV7()), ListingID: listing.ID, StorageKey: "k1", ContentType: "image/png", SizeBytes: 3,
	}))

	keys, err := repo.ListImageKeysByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1"}, keys)

	require.NoError(t, repo.Delete(ctx, listing.ID))
	assert.ErrorIs(t, repo.Delete(ctx, listing.ID), repository.ErrListingNotFound)

	count, err := images.CountByListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_RollsBackEveryStatement(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller@example.com")
	listing := newListing(owner.ID, "Bike", "Cairo")
	listing.SetCoordinates(cairo)
	require.NoError(t, NewListingRepository(db).Create(ctx, listing))

	failure := errors.New("abort")
	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		listing.Name = "Renamed"
		listing.Location = "Giza"
		listing.ClearCoordinates()
		if err := f.NewListingRepository().Update(ctx, listing, repository.ListingUpdate{
			Name:     ptr("Renamed"),
			Location: ptr("Giza"),
		}); err != nil {
			return err
		}

		return failure
	})
	require.ErrorIs(t, err, failure)

	got, err := NewListingRepository(db).FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bike", got.Name)
	assert.Equal(t, "Cairo", got.Location)
	require.NotNil(t, got.Coordinates)
	assert.InDelta(t, cairo.Latitude, got.Coordinates.Latitude, 1e-9)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller@example.com")
	listing := newListing(owner.ID, "Bike", "")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewListingRepository().Create(ctx, listing)
	})
	require.NoError(t, err)

	_, err = NewListingRepository(db).FindByID(ctx, listing.ID)
	assert.NoError(t, err)
}

func listingIDs(listings []*entity.Listing) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}

	return ids
}
