package notification

import (
	"context"
	"fmt"
	"time"

	"fulfillment/pkg/logger"
)

type relayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}

type Config struct {
	BatchSize   int
	MaxAttempts int
}

// Relay доставляет намерения из outbox в брокер. Доставка at-least-once:
// запись помечается отправленной только после подтверждения брокера.
type Relay struct {
	outbox    Outbox
	publisher Publisher
	cfg       Config
	log       relayLogger
	now       func() time.Time
}

func New(outbox Outbox, publisher Publisher, cfg Config, log relayLogger) *Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 10
	}

	return &Relay{
		outbox:    outbox,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// DispatchPending публикует одну пачку. Сбой публикации отдельной записи
// увеличивает ее счетчик попыток и не останавливает пачку.
func (r *Relay) DispatchPending(ctx context.Context) (int, error) {
	intents, err := r.outbox.FetchPending(ctx, r.cfg.BatchSize, r.cfg.MaxAttempts)
	if err != nil {
		return 0, fmt.Errorf("fetch pending notifications: %w", err)
	}
	if len(intents) == 0 {
		return 0, nil
	}

	dispatched := make([]string, 0, len(intents))
	for _, intent := range intents {
		if ctx.Err() != nil {
			break
		}

		if err := r.publisher.Publish(ctx, intent); err != nil {
			DispatchFailuresTotal.WithLabelValues(intent.Event.String()).Inc()
			r.log.Warn("notification publish failed",
				logger.NewField("intent_id", intent.ID),
				logger.NewField("event", intent.Event.String()),
				logger.NewField("attempt", intent.Attempts+1),
				logger.NewField("error", err.Error()),
			)
			if markErr := r.outbox.MarkFailed(ctx, intent.ID, err.Error()); markErr != nil {
				return len(dispatched), fmt.Errorf("mark notification %s failed: %w", intent.ID, markErr)
			}
			continue
		}

		DispatchedTotal.WithLabelValues(intent.Event.String()).Inc()
		dispatched = append(dispatched, intent.ID)
	}

	if len(dispatched) > 0 {
		if err := r.outbox.MarkDispatched(ctx, dispatched, r.now()); err != nil {
			return 0, fmt.Errorf("mark notifications dispatched: %w", err)
		}
		r.log.Info("notifications dispatched",
			logger.NewField("count", len(dispatched)),
		)
	}

	return len(dispatched), nil
}
