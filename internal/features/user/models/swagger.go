package models

// RegisterUserRequest is the body of POST /api/user
type RegisterUserRequest struct {
	TgID      *TelegramID `json:"tg_id" swaggertype:"integer" example:"123456789"`
	Username  string      `json:"username" example:"johndoe"`
	FirstName string      `json:"first_name" example:"John"`
	LastName  string      `json:"last_name" example:"Doe"`
}

// ConnectWalletRequest is the body of POST /api/connect-wallet
type ConnectWalletRequest struct {
	TgID          *TelegramID `json:"tg_id" swaggertype:"integer" example:"123456789"`
	WalletAddress *string     `json:"wallet_address" example:"EQAbc..."`
}

// UserResponse wraps a user record
type UserResponse struct {
	Success bool  `json:"success" example:"true"`
	User    *User `json:"user"`
}

// ConnectWalletResponse acknowledges a wallet link. Bonus is informational
// and is never added to the stored balance.
type ConnectWalletResponse struct {
	Success           bool    `json:"success" example:"true"`
	Message           string  `json:"message" example:"Wallet connected successfully"`
	TransferInitiated bool    `json:"transferInitiated" example:"true"`
	Bonus             float64 `json:"bonus" example:"5"`
}
