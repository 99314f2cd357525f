//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipper_get_test
package shipper_get

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
	GetShipper(ctx context.Context, id string) (*entities.Shipper, error)
}
