package outbox_dispatch

import (
	"context"
	"time"

	"fulfillment/pkg/logger"
)

type Relay interface {
	DispatchPending(ctx context.Context) (int, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

type OutboxDispatch struct {
	log      taskLogger
	relay    Relay
	interval time.Duration
}

func NewOutboxDispatch(log taskLogger, relay Relay, interval time.Duration) *OutboxDispatch {
	return &OutboxDispatch{
		log:      log,
		relay:    relay,
		interval: interval,
	}
}

func (o *OutboxDispatch) TTL() time.Duration {
	return o.interval
}

// Do публикует пачку за итерацию. Итерация не длиннее интервала, чтобы тики не копились.
func (o *OutboxDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	dispatched, err := o.relay.DispatchPending(ctxWithTimeout)
	if dispatched > 0 {
		o.log.Info("outbox dispatch",
			logger.NewField("dispatched", dispatched),
		)
	}

	return err
}

func (o *OutboxDispatch) Info() string {
	return "outbox dispatch"
}
