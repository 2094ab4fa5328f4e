package models

import "time"

// User представляет пользователя мини-приложения
// @Description Пользователь, зарегистрированный из Telegram
type User struct {
	ID            int64     `json:"id" example:"1" description:"ID записи в базе"`
	TelegramID    int64     `json:"telegram_id" example:"123456789" description:"ID пользователя в Telegram"`
	Username      string    `json:"username" example:"johndoe"`
	FirstName     string    `json:"first_name" example:"John"`
	LastName      string    `json:"last_name" example:"Doe"`
	Balance       float64   `json:"balance" example:"5"`
	WalletAddress *string   `json:"wallet_address" example:"EQAbc..."`
	CreatedAt     time.Time `json:"created_at" example:"2024-03-15T14:30:00Z"`
	UpdatedAt     time.Time `json:"updated_at" example:"2024-03-15T14:30:00Z"`
}

// RegisterInput carries the fields of a registration request. A nil
// TelegramID is passed through to the store as NULL.
type RegisterInput struct {
	TelegramID *int64
	Username   string
	FirstName  string
	LastName   string
}

// NewUser is the record passed to the store on registration. A nil TelegramID
// is written as NULL; an explicit 0 is written as 0.
type NewUser struct {
	TelegramID *int64
	Username   string
	FirstName  string
	LastName   string
	Balance    float64
}

type ConnectWalletInput struct {
	TelegramID    *int64
	WalletAddress *string
}
