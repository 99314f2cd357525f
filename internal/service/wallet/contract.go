//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"

	"fulfillment/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, modify entities.OrderModify) (*entities.Order, error)
	ListUnsettled(ctx context.Context, limit int) ([]entities.Order, error)
}

type PaymentRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*entities.Payment, error)
	Update(ctx context.Context, modify entities.PaymentModify) (*entities.Payment, error)
}

type WalletRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Wallet, error)
	Save(ctx context.Context, wallet entities.Wallet) error
	AppendLedgerEntries(ctx context.Context, entries []entities.LedgerEntry) error
	ListLedgerEntries(ctx context.Context, walletID string, limit int) ([]entities.LedgerEntry, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, request entities.WithdrawalRequest) error
	GetByID(ctx context.Context, id string) (*entities.WithdrawalRequest, error)
	Update(ctx context.Context, modify entities.WithdrawalModify) (*entities.WithdrawalRequest, error)
	ListPendingByWallet(ctx context.Context, walletID string) ([]entities.WithdrawalRequest, error)
}

type Outbox interface {
	Add(ctx context.Context, intents ...entities.NotificationIntent) error
}

type IntentFactory interface {
	PaymentRefunded(order entities.Order, payment entities.Payment) []entities.NotificationIntent
	PayoutCredited(wallet entities.Wallet, entry entities.LedgerEntry) []entities.NotificationIntent
	WithdrawalTransferred(request entities.WithdrawalRequest) []entities.NotificationIntent
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
