//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipper_test
package shipper

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipperModify entities.ShipperModify) (*entities.Shipper, error)
	GetByID(ctx context.Context, id string) (*entities.Shipper, error)
	Update(ctx context.Context, shipperModify entities.ShipperModify) (*entities.Shipper, error)
}
