//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transfer_webhook_post_test
package transfer_webhook_post

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
	ConfirmFromCallback(ctx context.Context, callback entities.TransferCallback) (*entities.ReconcileResult, error)
}
