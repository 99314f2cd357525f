//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"fulfillment/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, modify entities.OrderModify) (*entities.Order, error)
}

type ShipperService interface {
	GetShipper(ctx context.Context, id string) (*entities.Shipper, error)
	UpdateShipper(ctx context.Context, shipperModify entities.ShipperModify) (*entities.Shipper, error)
}

type WalletManager interface {
	InitiateRefund(ctx context.Context, orderID string, reason string) (*entities.Payment, error)
	SettleOrder(ctx context.Context, orderID string) (*entities.PayoutResult, error)
}

type DeliveryTimeFactory interface {
	EstimateDelivery(transportType entities.ShipperTransportType, tripStartedAt time.Time) time.Time
}

type IntentFactory interface {
	OrderStatusChanged(order entities.Order) ([]entities.NotificationIntent, error)
}

type Outbox interface {
	Add(ctx context.Context, intents ...entities.NotificationIntent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
