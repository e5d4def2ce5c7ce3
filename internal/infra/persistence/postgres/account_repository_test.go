package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := &entity.User{ID: uuid.Must(uuid.NewV7()), Email: " Seller@Example.com ", Name: "Seller"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, "seller@example.com", user.Email)

	got, err := repo.FindByEmail(ctx, "SELLER@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seller", got.Name)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Create(ctx, &entity.User{ID: uuid.Must(uuid.NewV7()), Email: "seller@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "seller@example.com")

	require.NoError(t, NewAuthRepository(db).CreateAuthentication(ctx, &entity.Authentication{
		ID: uuid.Must(uuid.NewV7()), UserID: user.ID, Provider: entity.ProviderTypeEmail,
		ProviderUserID: user.Email, PasswordHash: "hash",
	}))
	require.NoError(t, NewRefreshTokenRepository(db).CreateRefreshToken(ctx, &entity.RefreshToken{
		ID: uuid.Must(uuid.NewV7()), UserID: user.ID, TokenHash: "h1", ExpiresAt: time.Now().Add(time.Hour),
	}))
	listing := newListing(user.ID, "Bike", "")
	require.NoError(t, NewListingRepository(db).Create(ctx, listing))
	require.NoError(t, NewListingImageRepository(db).Create(ctx, &entity.ListingImage{
		ID: uuid.Must(uuid.NewV7()), ListingID: listing.ID, StorageKey: "k", ContentType: "image/png",
	}))

	repo := NewUserRepository(db)
	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), repository.ErrUserNotFound)

	for _, m := range model.AllModels() {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Zero(t, count, "%T rows left behind", m)
	}
}

func TestAuthRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "seller@example.com")
	repo := NewAuthRepository(db)

	auth := &entity.Authentication{
		ID: uuid.Must(uuid.NewV7()), UserID: user.ID, Provider: entity.ProviderTypeEmail,
		ProviderUserID: "seller@example.com", PasswordHash: "hash",
	}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))

	got, err := repo.FindAuthentication(ctx, entity.ProviderTypeEmail, "seller@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = repo.FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)

	dup := *auth
	dup.ID = uuid.Must(uuid.NewV7())
	assert.ErrorIs(t, repo.CreateAuthentication(ctx, &dup), domainerrors.ErrUserAlreadyExists)
}

func TestRefreshTokenRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "seller@example.com")
	repo := NewRefreshTokenRepository(db)

	for _, hash := range []string{"h1", "h2"} {
		require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
			ID: uuid.Must(uuid.NewV7()), UserID: user.ID, TokenHash: hash, ExpiresAt: time.Now().Add(time.Hour),
		}))
	}

	got, err := repo.FindRefreshTokenByHash(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "h1"))
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "h1"), repository.ErrRefreshTokenNotFound)

	_, err = repo.FindRefreshTokenByHash(ctx, "h1")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	require.NoError(t, repo.DeleteRefreshTokensByUserID(ctx, user.ID))
	_, err = repo.FindRefreshTokenByHash(ctx, "h2")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestListingImageRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "seller@example.com")
	listing := newListing(user.ID, "Bike", "")
	require.NoError(t, NewListingRepository(db).Create(ctx, listing))
	repo := NewListingImageRepository(db)

	second := &entity.ListingImage{ID: uuid.Must(uuid.NewV7()), ListingID: listing.ID, StorageKey: "b", ContentType: "image/png", Position: 1}
	first := &entity.ListingImage{ID: uuid.Must(uuid.NewV7()), ListingID: listing.ID, StorageKey: "a", ContentType: "image/jpeg", Position: 0}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	images, err := repo.ListByListing(ctx, listing.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "a", images[0].StorageKey)
	assert.Equal(t, "b", images[1].StorageKey)

	found, err := NewListingRepository(db).FindByID(ctx, listing.ID)
	require.NoError(t, err)
	require.Len(t, found.Images, 2)
	assert.Equal(t, first.ID, found.Images[0].ID)

	_, err = repo.FindByID(ctx, uuid.New(), first.ID)
	assert.ErrorIs(t, err, repository.ErrImageNotFound)

	err = repo.Create(ctx, &entity.ListingImage{ID: uuid.Must(uuid.NewV7()), ListingID: uuid.New(), StorageKey: "c", ContentType: "image/png"})
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)

	require.NoError(t, repo.Delete(ctx, listing.ID, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, listing.ID, first.ID), repository.ErrImageNotFound)

	count, err := repo.CountByListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
