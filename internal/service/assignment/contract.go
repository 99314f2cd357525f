//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"fulfillment/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, modify entities.OrderModify) (*entities.Order, error)
	ListClaimable(ctx context.Context, limit int) ([]entities.Order, error)
}

type ShipperService interface {
	GetShipper(ctx context.Context, id string) (*entities.Shipper, error)
}

type IntentFactory interface {
	OrderClaimed(order entities.Order) []entities.NotificationIntent
}

type Outbox interface {
	Add(ctx context.Context, intents ...entities.NotificationIntent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
