package service

import (
	"context"
	"errors"

	apperrors "ton-mini-app-backend/internal/common/errors"
	"ton-mini-app-backend/internal/common/logger"
	transfermodels "ton-mini-app-backend/internal/features/transfer/models"
	transfer "ton-mini-app-backend/internal/features/transfer/service"
	"ton-mini-app-backend/internal/features/user/models"
	"ton-mini-app-backend/internal/features/user/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserService interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
	GetUser(ctx context.Context, telegramID int64) (*models.User, error)
	ConnectWallet(ctx context.Context, in models.ConnectWalletInput) (*WalletLink, error)
}

// WalletLink is the outcome of ConnectWallet.
type WalletLink struct {
	Transfer     *transfermodels.Transfer
	RowsAffected int64
	Bonus        float64
}

type Options struct {
	SignupBalance float64
	WalletBonus   float64
}

type userService struct {
	repo      repository.UserRepository
	cache     repository.UserCache
	transfers transfer.Initiator
	opts      Options
}

// NewUserService wires the store, an optional cache (nil disables it) and the
// transfer initiator.
func NewUserService(repo repository.UserRepository, cache repository.UserCache, transfers transfer.Initiator, opts Options) UserService {
	return &userService{
		repo:      repo,
		cache:     cache,
		transfers: transfers,
		opts:      opts,
	}
}

// Register returns the existing user for the Telegram ID untouched, or creates
// one with the signup balance.
func (s *userService) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	if in.TelegramID != nil {
		existing, err := s.lookup(ctx, *in.TelegramID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}

	newUser := &models.NewUser{
		TelegramID: in.TelegramID,
		Username:   in.Username,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Balance:    s.opts.SignupBalance,
	}

	created, err := s.repo.Create(ctx, newUser)
	if err != nil {
		return nil, apperrors.NewDatabaseError("create user", err)
	}

	logger.Info().
		Int64("telegram_id", created.TelegramID).
		Int64("user_id", created.ID).
		Msg("User registered")

	s.remember(ctx, created)
	return created, nil
}

func (s *userService) GetUser(ctx context.Context, telegramID int64) (*models.User, error) {
	return s.lookup(ctx, telegramID)
}

// ConnectWallet initiates the transfer first and only then stores the
// address, so a wallet is never recorded as linked without a transfer attempt.
func (s *userService) ConnectWallet(ctx context.Context, in models.ConnectWalletInput) (*WalletLink, error) {
	var address string
	if in.WalletAddress != nil {
		address = *in.WalletAddress
	}

	tr, err := s.transfers.InitiateTransfer(ctx, address)
	if err != nil {
		return nil, apperrors.NewTransferError(address, err)
	}

	updated, err := s.repo.UpdateWallet(ctx, in.TelegramID, in.WalletAddress)
	if err != nil {
		return nil, apperrors.NewDatabaseError("update wallet", err)
	}

	var rows int64
	if updated != nil {
		rows = 1
		// Свежая запись вытесняет из кэша всё, что прочитано до обновления
		if !s.remember(ctx, updated) {
			s.forget(ctx, updated.TelegramID)
		}
	} else if in.TelegramID != nil {
		s.forget(ctx, *in.TelegramID)
	}

	event := logger.Info().Str("wallet_address", address).Int64("rows_affected", rows)
	if in.TelegramID != nil {
		event = event.Int64("telegram_id", *in.TelegramID)
	}
	event.Msg("Wallet connected")

	return &WalletLink{Transfer: tr, RowsAffected: rows, Bonus: s.opts.WalletBonus}, nil
}

func (s *userService) lookup(ctx context.Context, telegramID int64) (*models.User, error) {
	if s.cache != nil {
		u, err := s.cache.Get(ctx, telegramID)
		if err == nil && u != nil {
			return u, nil
		}
	}

	u, err := s.repo.GetByTelegramID(ctx, &telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		return nil, apperrors.NewDatabaseError("get user", err)
	}

	s.remember(ctx, u)
	return u, nil
}

// Ошибки кэша не влияют на результат запроса
func (s *userService) remember(ctx context.Context, u *models.User) bool {
	if s.cache == nil {
		return true
	}
	if err := s.cache.Set(ctx, u); err != nil {
		logger.Warn().Err(apperrors.NewCacheError("set user", err)).Int64("telegram_id", u.TelegramID).Msg("Failed to cache user")
		return false
	}
	return true
}

func (s *userService) forget(ctx context.Context, telegramID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, telegramID); err != nil {
		logger.Warn().Err(apperrors.NewCacheError("invalidate user", err)).Int64("telegram_id", telegramID).Msg("Failed to invalidate cached user")
	}
}
