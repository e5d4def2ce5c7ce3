package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with foreign keys on
// and the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{}),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{ID: uuid.Must(uuid.NewV7()), Email: email, Name: "Seller"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func newListing(ownerID uuid.UUID, name, location string) *entity.Listing {
	return &entity.Listing{
		ID:       uuid.Must(uuid.NewV7()),
		OwnerID:  ownerID,
		Name:     name,
		Price:    10,
		Location: location,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func waitTick() {
	// created_at ordering needs distinct timestamps
	time.Sleep(2 * time.Millisecond)
}
