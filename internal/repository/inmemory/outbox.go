package inmemory

import (
	"context"
	"time"

	"fulfillment/internal/entities"
)

type OutboxRepository struct {
	store *Store
}

func (s *Store) Outbox() *OutboxRepository {
	return &OutboxRepository{store: s}
}

func (r *OutboxRepository) Add(ctx context.Context, intents ...entities.NotificationIntent) error {
	if len(intents) == 0 {
		return nil
	}
	return r.store.write(ctx, func(st *state) error {
		st.outbox = append(st.outbox, intents...)
		return nil
	})
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]entities.NotificationIntent, error) {
	intents := make([]entities.NotificationIntent, 0)
	err := r.store.read(ctx, func(st *state) error {
		for _, intent := range st.outbox {
			if intent.DispatchedAt == nil && intent.Attempts < maxAttempts {
				intents = append(intents, intent)
			}
			if limit > 0 && len(intents) == limit {
				break
			}
		}
		return nil
	})
	return intents, err
}

func (r *OutboxRepository) MarkDispatched(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return r.store.write(ctx, func(st *state) error {
		for i := range st.outbox {
			if _, ok := set[st.outbox[i].ID]; ok {
				dispatched := at
				st.outbox[i].DispatchedAt = &dispatched
				st.outbox[i].Attempts++
			}
		}
		return nil
	})
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return r.store.write(ctx, func(st *state) error {
		for i := range st.outbox {
			if st.outbox[i].ID == id {
				msg := reason
				st.outbox[i].Attempts++
				st.outbox[i].LastError = &msg
			}
		}
		return nil
	})
}
