//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payout_reject_post_test
package payout_reject_post

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
	RejectPayout(ctx context.Context, withdrawalID string, reason string) (*entities.WithdrawalRequest, error)
}
