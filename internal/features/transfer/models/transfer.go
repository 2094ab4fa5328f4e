package models

import "time"

const AmountAllBalance = "ALL_BALANCE"

// Transfer describes a withdrawal that was requested for a wallet.
type Transfer struct {
	Success   bool      `json:"success"`
	From      string    `json:"from"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}
