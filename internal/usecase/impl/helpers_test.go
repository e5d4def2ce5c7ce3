package impl

import (
	"context"
	"io"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var cairo = geo.Coordinates{Latitude: 30.0444, Longitude: 31.2357} //nolint:gochecknoglobals

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// expectTransaction makes txManager run the transaction body against factory
// and return its error, the way the gorm manager does.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

func cairoResult() *service.GeocodeResult {
	return &service.GeocodeResult{
		Coordinates:    cairo,
		DisplayAddress: "Cairo, Egypt",
		Provider:       "static",
	}
}

func newOwnedListing(ownerID uuid.UUID, location string, coordinates *geo.Coordinates) *entity.Listing {
	return &entity.Listing{
		ID:          uuid.Must(uuid.NewV7()),
		OwnerID:     ownerID,
		Name:        "Desk",
		Description: "<p>Oak desk</p>",
		Price:       120,
		Location:    location,
		Coordinates: coordinates,
	}
}

func ptr[T any](v T) *T {
	return &v
}
