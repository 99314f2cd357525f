//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"fulfillment/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, modify entities.OrderModify) (*entities.Order, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment entities.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*entities.Payment, error)
	GetByCorrelationTag(ctx context.Context, tag string) (*entities.Payment, error)
	Update(ctx context.Context, modify entities.PaymentModify) (*entities.Payment, error)
}

// TransferProvider выписка входящих переводов на счет платформы.
type TransferProvider interface {
	ListRecentTransfers(ctx context.Context, amount int64) ([]entities.Transfer, error)
}

type Outbox interface {
	Add(ctx context.Context, intents ...entities.NotificationIntent) error
}

type IntentFactory interface {
	PaymentPaid(order entities.Order, payment entities.Payment) []entities.NotificationIntent
	PaymentRefunded(order entities.Order, payment entities.Payment) []entities.NotificationIntent
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
