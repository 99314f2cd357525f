package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type IntentDB struct {
	ID           string
	Event        string
	RecipientID  string
	OrderID      *string
	Payload      []byte
	Attempts     int
	LastError    *string
	CreatedAt    time.Time
	DispatchedAt *time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Add записывает намерения уведомить. Вызывается внутри бизнес-транзакции.
func (r *Repository) Add(ctx context.Context, intents ...entities.NotificationIntent) error {
	if len(intents) == 0 {
		return nil
	}

	builder := qb.
		Insert("notification_outbox").
		Columns("id", "event", "recipient_id", "order_id", "payload", "created_at")

	for _, intent := range intents {
		payload, err := json.Marshal(intent.Payload)
		if err != nil {
			return fmt.Errorf("marshal outbox payload: %w", err)
		}
		builder = builder.Values(
			intent.ID,
			intent.Event.String(),
			intent.RecipientID,
			intent.OrderID,
			payload,
			intent.CreatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected outbox repository add error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected outbox repository add error: %w", err)
	}

	return nil
}

// FetchPending неотправленные записи, у которых не исчерпаны попытки, старые первыми.
func (r *Repository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]entities.NotificationIntent, error) {
	query := `SELECT id, event, recipient_id, order_id, payload, attempts, last_error, created_at, dispatched_at
		FROM notification_outbox
		WHERE dispatched_at IS NULL AND attempts < $1
		ORDER BY created_at
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetchpending error: %w", err)
	}
	defer rows.Close()

	intents := make([]entities.NotificationIntent, 0, limit)
	for rows.Next() {
		var model IntentDB
		err := rows.Scan(
			&model.ID,
			&model.Event,
			&model.RecipientID,
			&model.OrderID,
			&model.Payload,
			&model.Attempts,
			&model.LastError,
			&model.CreatedAt,
			&model.DispatchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository fetchpending error: %w", err)
		}

		intent := entities.NotificationIntent{
			ID:           model.ID,
			Event:        entities.NotificationEvent(model.Event),
			RecipientID:  model.RecipientID,
			OrderID:      model.OrderID,
			Attempts:     model.Attempts,
			LastError:    model.LastError,
			CreatedAt:    model.CreatedAt,
			DispatchedAt: model.DispatchedAt,
		}
		if len(model.Payload) > 0 {
			if err := json.Unmarshal(model.Payload, &intent.Payload); err != nil {
				return nil, fmt.Errorf("unmarshal outbox payload %s: %w", model.ID, err)
			}
		}
		intents = append(intents, intent)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetchpending error: %w", err)
	}

	return intents, nil
}

func (r *Repository) MarkDispatched(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := qb.
		Update("notification_outbox").
		Set("dispatched_at", at).
		Set("attempts", sq.Expr("attempts + 1")).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected outbox repository markdispatched error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected outbox repository markdispatched error: %w", err)
	}

	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := `UPDATE notification_outbox
		SET attempts = attempts + 1, last_error = $2
		WHERE id = $1`

	if _, err := r.querier.Exec(ctx, query, id, reason); err != nil {
		return fmt.Errorf("unexpected outbox repository markfailed error: %w", err)
	}

	return nil
}
