//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"fulfillment/internal/entities"
)

type Outbox interface {
	FetchPending(ctx context.Context, limit int, maxAttempts int) ([]entities.NotificationIntent, error)
	MarkDispatched(ctx context.Context, ids []string, at time.Time) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type Publisher interface {
	Publish(ctx context.Context, intent entities.NotificationIntent) error
}
