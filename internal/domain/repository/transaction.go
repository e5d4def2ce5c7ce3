package repository

import "context"

// TransactionManager runs fn inside one database transaction. Repositories
// obtained from the factory share it; an error from fn rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAuthRepository() AuthRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewListingRepository() ListingRepository
	NewListingImageRepository() ListingImageRepository
}
