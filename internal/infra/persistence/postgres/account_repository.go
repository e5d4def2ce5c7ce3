package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Accounts span three tables: users, user_authentications and refresh_tokens.
// The last two cascade from users.

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail compares normalized addresses, so lookups ignore case.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", entity.NormalizeEmail(email))
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var row model.UserModel

	err := repo.db.WithContext(ctx).Take(&row, query, arg).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repository.ErrUserNotFound
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user")
	}

	return &entity.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := model.UserModel{
		ID:    user.ID,
		Email: entity.NormalizeEmail(user.Email),
		Name:  user.Name,
	}

	err := repo.db.WithContext(ctx).Create(&row).Error
	switch {
	case err == nil:
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.Email = row.Email
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt

	return nil
}

// Delete removes the user; foreign keys take listings, images, credentials and sessions along.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	row := model.AuthenticationModel{
		ID:             auth.ID,
		UserID:         auth.UserID,
		Provider:       auth.Provider,
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
	}

	err := repo.db.WithContext(ctx).Create(&row).Error
	switch {
	case err == nil:
		auth.CreatedAt = row.CreatedAt

		return nil
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrUserAlreadyExists.WrapMessage("credentials already registered")
	case isForeignKeyConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrUserCreationFailed.WrapMessage("incomplete credentials")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	var row model.AuthenticationModel

	err := repo.db.WithContext(ctx).
		Take(&row, "provider = ? AND provider_user_id = ?", provider, providerUserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repository.ErrAuthNotFound
	case err != nil:
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return &entity.Authentication{
		ID:             row.ID,
		UserID:         row.UserID,
		Provider:       row.Provider,
		ProviderUserID: row.ProviderUserID,
		PasswordHash:   row.PasswordHash,
		CreatedAt:      row.CreatedAt,
	}, nil
}

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (repo *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	row := model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	err := repo.db.WithContext(ctx).Create(&row).Error
	switch {
	case err == nil:
		token.CreatedAt = row.CreatedAt

		return nil
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token already exists")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrUserNotFound.WrapMessage("session for unknown user")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}
}

// FindRefreshTokenByHash does not look at expiry; callers decide with RefreshToken.Expired.
func (repo *refreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var row model.RefreshTokenModel

	err := repo.db.WithContext(ctx).Take(&row, "token_hash = ?", tokenHash).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repository.ErrRefreshTokenNotFound
	case err != nil:
		return nil, errors.WithStack(err)
	}

	return &entity.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (repo *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "token_hash = ?", tokenHash)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func (repo *refreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	return errors.WithStack(repo.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "user_id = ?", userID).Error)
}
