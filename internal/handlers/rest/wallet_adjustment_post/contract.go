//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_adjustment_post_test
package wallet_adjustment_post

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
	Adjust(ctx context.Context, key entities.WalletKey, amount int64, note string) (*entities.LedgerEntry, error)
}
