package service

import (
	"context"
	"time"

	"github.com/xssnick/tonutils-go/address"

	"ton-mini-app-backend/internal/common/logger"
	"ton-mini-app-backend/internal/features/transfer/models"
)

// Initiator starts a balance withdrawal from a linked wallet.
type Initiator interface {
	InitiateTransfer(ctx context.Context, walletAddress string) (*models.Transfer, error)
}

// StubInitiator records the intent only: no network call is made and no
// balance is touched.
type StubInitiator struct {
	now func() time.Time
}

func NewStubInitiator() *StubInitiator {
	return &StubInitiator{now: time.Now}
}

// NewStubInitiatorWithClock is used by tests to pin the timestamp.
func NewStubInitiatorWithClock(now func() time.Time) *StubInitiator {
	return &StubInitiator{now: now}
}

func (s *StubInitiator) InitiateTransfer(ctx context.Context, walletAddress string) (*models.Transfer, error) {
	event := logger.Info().Str("wallet_address", walletAddress)
	if addr, err := address.ParseAddr(walletAddress); err == nil {
		event = event.
			Int32("workchain", addr.Workchain()).
			Bool("bounceable", addr.IsBounceable()).
			Bool("testnet_only", addr.IsTestnetOnly())
	} else {
		event = event.Str("address_format", "unrecognized")
	}
	event.Msg("Initiating TON transfer")

	return &models.Transfer{
		Success:   true,
		From:      walletAddress,
		Amount:    models.AmountAllBalance,
		Timestamp: s.now().UTC(),
	}, nil
}
