//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_release_post_test
package order_release_post

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
	ReleaseOrder(ctx context.Context, orderID string, shipperID string) (*entities.Order, error)
}
