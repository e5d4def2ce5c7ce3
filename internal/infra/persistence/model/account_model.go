package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is a row of users. IDs are UUIDv7 values generated by the application.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_on_email"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// AuthenticationModel is a row of user_authentications, one per login method.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_user_authentications_on_user_id"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_authentications_on_provider_identity,priority:1"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_authentications_on_provider_identity,priority:2"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel is a row of refresh_tokens. TokenHash is the hex SHA-256
// of the token handed to the client.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_refresh_tokens_on_user_id"`
	TokenHash string    `gorm:"type:char(64);not null;uniqueIndex:idx_refresh_tokens_on_token_hash"`
	ExpiresAt time.Time `gorm:"not null;index:idx_refresh_tokens_on_expires_at"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
