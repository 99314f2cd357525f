//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_reconcile_post_test
package payment_reconcile_post

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
	Reconcile(ctx context.Context, caller entities.Caller, orderID string) (*entities.ReconcileResult, error)
}
