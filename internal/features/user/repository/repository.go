package repository

import (
	"context"
	"errors"

	"ton-mini-app-backend/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository is the remote store of users keyed by Telegram ID.
type UserRepository interface {
	// GetByTelegramID returns ErrUserNotFound when no record matches.
	GetByTelegramID(ctx context.Context, telegramID *int64) (*models.User, error)
	// Create inserts a user and returns the stored record. If a record with the
	// same Telegram ID already exists, that record is returned instead.
	Create(ctx context.Context, user *models.NewUser) (*models.User, error)
	// UpdateWallet overwrites the wallet address and returns the updated record.
	// A missing user is not an error: the result is nil.
	UpdateWallet(ctx context.Context, telegramID *int64, walletAddress *string) (*models.User, error)
}

// UserCache is an optional read-through layer in front of UserRepository.
type UserCache interface {
	Get(ctx context.Context, telegramID int64) (*models.User, error)
	// Set never replaces a cached record with a higher UpdatedAt.
	Set(ctx context.Context, user *models.User) error
	Invalidate(ctx context.Context, telegramID int64) error
}
