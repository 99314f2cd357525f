//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipper_me_put_test
package shipper_me_put

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateShipper(ctx context.Context, shipperModify entities.ShipperModify) (*entities.Shipper, error)
}
