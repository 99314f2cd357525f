//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payout_transfer_post_test
package payout_transfer_post

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
	ProcessPayoutTransfer(ctx context.Context, withdrawalID string) (*entities.WithdrawalRequest, error)
}
