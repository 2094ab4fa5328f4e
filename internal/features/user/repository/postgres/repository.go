package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ton-mini-app-backend/internal/features/user/models"
	"ton-mini-app-backend/internal/features/user/repository"
)

// Таблица users создается вне сервиса; telegram_id должен быть NOT NULL UNIQUE.
const userColumns = `id, telegram_id, COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(last_name, ''),
	balance, wallet_address, created_at, updated_at`

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.UserRepository {
	return &postgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user   models.User
		wallet sql.NullString
	)
	err := row.Scan(
		&user.ID, &user.TelegramID, &user.Username, &user.FirstName, &user.LastName,
		&user.Balance, &wallet, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if wallet.Valid {
		user.WalletAddress = &wallet.String
	}
	return &user, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *postgresRepository) GetByTelegramID(ctx context.Context, telegramID *int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, telegramID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Create создает пользователя. Если параллельный запрос успел вставить запись
// с тем же telegram_id, возвращается она.
func (r *postgresRepository) Create(ctx context.Context, user *models.NewUser) (*models.User, error) {
	query := `
		INSERT INTO users (telegram_id, username, first_name, last_name, balance)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5)
		ON CONFLICT (telegram_id) DO NOTHING
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.TelegramID, user.Username, user.FirstName, user.LastName, user.Balance))
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	existing, err := r.GetByTelegramID(ctx, user.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to read concurrently created user: %w", err)
	}
	return existing, nil
}

// UpdateWallet перезаписывает адрес кошелька без проверки существования пользователя.
// Если пользователя нет, возвращается nil без ошибки.
func (r *postgresRepository) UpdateWallet(ctx context.Context, telegramID *int64, walletAddress *string) (*models.User, error) {
	query := `
		UPDATE users
		SET wallet_address = $2, updated_at = NOW()
		WHERE telegram_id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, telegramID, walletAddress))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	return user, nil
}
