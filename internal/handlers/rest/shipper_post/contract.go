//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipper_post_test
package shipper_post

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
	CreateShipper(ctx context.Context, caller entities.Caller, shipperModify entities.ShipperModify) (*entities.Shipper, error)
}
