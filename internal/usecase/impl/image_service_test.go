package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR") //nolint:gochecknoglobals

type imageServiceFixtures struct {
	service     usecase.ImageUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	listingRepo *mockRepo.MockListingRepository
	imageRepo   *mockRepo.MockListingImageRepository
	storage     *mockSvc.MockObjectStorage
}

func createTestImageService(t *testing.T, storageCfg *config.StorageConfig) imageServiceFixtures {
	cfg := newTestConfig()
	if storageCfg != nil {
		cfg.Storage = storageCfg
	}

	fx := imageServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		imageRepo:   mockRepo.NewMockListingImageRepository(t),
		storage:     mockSvc.NewMockObjectStorage(t),
	}
	fx.factory.EXPECT().NewListingImageRepository().Return(fx.imageRepo).Maybe()

	svc, err := NewImageService(ImageServiceParams{
		TxManager:   fx.txManager,
		ListingRepo: fx.listingRepo,
		ImageRepo:   fx.imageRepo,
		Storage:     fx.storage,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)
	fx.service = svc

	return fx
}

func TestImageService_AttachImage_Success(t *testing.T) {
	fx := createTestImageService(t, nil)
	ctx := context.Background()
	ownerID := uuid.New()

	listing := newOwnedListing(ownerID, "Cairo, Egypt", &cairo)
	listing.Images = []*entity.ListingImage{{ID: uuid.New(), ListingID: listing.ID, Position: 3}}
	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

	prefix := "listings/" + listing.ID.String() + "/"
	fx.storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, prefix) && strings.HasSuffix(key, ".png")
		}), "image/png", pngHeader).
		Return(nil).
		Once()

	expectTransaction(fx.txManager, fx.factory)
	fx.imageRepo.EXPECT().CountByListing(ctx, listing.ID).Return(int64(1), nil)
	fx.imageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ListingImage")).Return(nil).Once()

	image, err := fx.service.AttachImage(ctx, &usecase.AttachImageInput{
		ListingID:   listing.ID,
		RequesterID: ownerID,
		Filename:    "desk.png",
		Data:        pngHeader,
	})

	require.NoError(t, err)
	assert.Equal(t, "image/png", image.ContentType)
	assert.Equal(t, 4, image.Position)
	assert.EqualValues(t, len(pngHeader), image.SizeBytes)
	assert.True(t, strings.HasPrefix(image.StorageKey, prefix))
}

func TestImageService_AttachImage_Rejected(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("too large", func(t *testing.T) {
		fx := createTestImageService(t, &config.StorageConfig{MaxImageSize: "8B"})

		_, err := fx.service.AttachImage(ctx, &usecase.AttachImageInput{ListingID: uuid.New(), RequesterID: ownerID, Data: pngHeader})
		assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	})

	t.Run("not an image", func(t *testing.T) {
		fx := createTestImageService(t, nil)

		_, err := fx.service.AttachImage(ctx, &usecase.AttachImageInput{
			ListingID: uuid.New(), RequesterID: ownerID, Data: []byte("<html><body>hi</body></html>"),
		})
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImage)
	})

	t.Run("empty", func(t *testing.T) {
		fx := createTestImageService(t, nil)

		_, err := fx.service.AttachImage(ctx, &usecase.AttachImageInput{ListingID: uuid.New(), RequesterID: ownerID})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("not the owner", func(t *testing.T) {
		fx := createTestImageService(t, nil)
		listing := newOwnedListing(uuid.New(), "", nil)
		fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

		_, err := fx.service.AttachImage(ctx, &usecase.AttachImageInput{ListingID: listing.ID, RequesterID: ownerID, Data: pngHeader})
		assert.ErrorIs(t, err, domainerrors.ErrListingOwnershipViolation)
	})

	t.Run("limit reached", func(t *testing.T) {
		fx := createTestImageService(t, &config.StorageConfig{MaxImagesPerListing: 1})
		listing := newOwnedListing(ownerID, "", nil)
		listing.Images = []*entity.ListingImage{{ID: uuid.New()}}
		fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

		_, err := fx.service.AttachImage(ctx, &usecase.AttachImageInput{ListingID: listing.ID, RequesterID: ownerID, Data: pngHeader})
		assert.ErrorIs(t, err, domainerrors.ErrImageLimitReached)
	})
}

func TestImageService_AttachImage_RowFailureRemovesObject(t *testing.T) {
	fx := createTestImageService(t, nil)
	ctx := context.Background()
	ownerID := uuid.New()

	listing := newOwnedListing(ownerID, "", nil)
	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

	var storedKey string
	fx.storage.EXPECT().
		Put(ctx, mock.Anything, "image/png", pngHeader).
		Run(func(_ context.Context, key, _ string, _ []byte) { storedKey = key }).
		Return(nil)
	expectTransaction(fx.txManager, fx.factory)
	fx.imageRepo.EXPECT().CountByListing(ctx, listing.ID).Return(int64(0), nil)
	fx.imageRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrListingNotFound.WrapMessage("image listing does not exist"))
	fx.storage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, key string) { assert.Equal(t, storedKey, key) }).
		Return(nil).
		Once()

	_, err := fx.service.AttachImage(ctx, &usecase.AttachImageInput{ListingID: listing.ID, RequesterID: ownerID, Data: pngHeader})
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestImageService_OpenImage(t *testing.T) {
	ctx := context.Background()
	listingID, imageID := uuid.New(), uuid.New()
	image := &entity.ListingImage{ID: imageID, ListingID: listingID, StorageKey: "listings/x.png", ContentType: "image/png"}

	t.Run("found", func(t *testing.T) {
		fx := createTestImageService(t, nil)
		fx.imageRepo.EXPECT().FindByID(ctx, listingID, imageID).Return(image, nil)
		fx.storage.EXPECT().
			Open(ctx, "listings/x.png").
			Return(io.NopCloser(strings.NewReader("bytes")), &service.ObjectAttributes{ContentType: "image/png", Size: 5}, nil)

		content, err := fx.service.OpenImage(ctx, listingID, imageID)
		require.NoError(t, err)
		defer content.Body.Close()

		body, err := io.ReadAll(content.Body)
		require.NoError(t, err)
		assert.Equal(t, "bytes", string(body))
		assert.Equal(t, image, content.Image)
	})

	t.Run("unknown image", func(t *testing.T) {
		fx := createTestImageService(t, nil)
		fx.imageRepo.EXPECT().FindByID(ctx, listingID, imageID).Return(nil, repository.ErrImageNotFound)

		_, err := fx.service.OpenImage(ctx, listingID, imageID)
		assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
	})

	t.Run("object missing", func(t *testing.T) {
		fx := createTestImageService(t, nil)
		fx.imageRepo.EXPECT().FindByID(ctx, listingID, imageID).Return(image, nil)
		fx.storage.EXPECT().Open(ctx, "listings/x.png").Return(nil, nil, service.ErrObjectNotFound)

		_, err := fx.service.OpenImage(ctx, listingID, imageID)
		assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestImageService(t, nil)
		fx.imageRepo.EXPECT().FindByID(ctx, listingID, imageID).Return(image, nil)
		fx.storage.EXPECT().Open(ctx, "listings/x.png").Return(nil, nil, errors.New("permission denied"))

		_, err := fx.service.OpenImage(ctx, listingID, imageID)
		assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
	})
}

func TestImageService_DeleteImage(t *testing.T) {
	fx := createTestImageService(t, nil)
	ctx := context.Background()
	ownerID := uuid.New()

	listing := newOwnedListing(ownerID, "", nil)
	image := &entity.ListingImage{ID: uuid.New(), ListingID: listing.ID, StorageKey: "listings/y.jpg"}

	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	fx.imageRepo.EXPECT().FindByID(ctx, listing.ID, image.ID).Return(image, nil)
	expectTransaction(fx.txManager, fx.factory)
	fx.imageRepo.EXPECT().Delete(ctx, listing.ID, image.ID).Return(nil).Once()
	fx.storage.EXPECT().Delete(ctx, "listings/y.jpg").Return(nil).Once()

	require.NoError(t, fx.service.DeleteImage(ctx, listing.ID, image.ID, ownerID))
}

func TestNewImageService_InvalidSize(t *testing.T) {
	_, err := NewImageService(ImageServiceParams{
		Config: &config.Config{Storage: &config.StorageConfig{MaxImageSize: "lots"}},
		Logger: newDiscardLogger(),
	})
	require.Error(t, err)
}
