// Package postgres implements the marketplace repositories on GORM. Production
// runs on PostgreSQL; tests run the same code on SQLite.
package postgres

import (
	"context"

	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in a GORM transaction. GORM rolls back when fn returns an
// error or panics; fn's error is returned as is so callers can match it.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}

// txRepositories binds every repository to one transaction handle.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewAuthRepository() repository.AuthRepository {
	return NewAuthRepository(r.tx)
}

func (r txRepositories) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(r.tx)
}

func (r txRepositories) NewListingRepository() repository.ListingRepository {
	return NewListingRepository(r.tx)
}

func (r txRepositories) NewListingImageRepository() repository.ListingImageRepository {
	return NewListingImageRepository(r.tx)
}
