package payout_settlement

import (
	"context"
	"time"

	"fulfillment/pkg/logger"
)

type WalletManager interface {
	SettlePending(ctx context.Context, limit int) (int, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

// PayoutSettlement страховка для выплат: подбирает доставленные оплаченные заказы,
// у которых хук после DELIVERED не отработал.
type PayoutSettlement struct {
	log       taskLogger
	wallets   WalletManager
	interval  time.Duration
	batchSize int
}

func NewPayoutSettlement(log taskLogger, wallets WalletManager, interval time.Duration, batchSize int) *PayoutSettlement {
	return &PayoutSettlement{
		log:       log,
		wallets:   wallets,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (p *PayoutSettlement) TTL() time.Duration {
	return p.interval
}

func (p *PayoutSettlement) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	settled, err := p.wallets.SettlePending(ctxWithTimeout, p.batchSize)
	if settled > 0 {
		p.log.Info("payout settlement",
			logger.NewField("settled_orders", settled),
		)
	}

	return err
}

func (p *PayoutSettlement) Info() string {
	return "payout settlement"
}
