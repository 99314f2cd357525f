package tx

import (
	"context"
	"errors"
	"time"

	"fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrSerializationFailure = "40001"
	PgErrDeadlockDetected     = "40P01"
)

const (
	defaultInitialInterval = 10 * time.Millisecond
	defaultMaxInterval     = 200 * time.Millisecond
	defaultMaxElapsedTime  = 2 * time.Second
	defaultRandomization   = 0.5
	defaultMultiplier      = 2
)

type ctxKey struct{}

// Manager инкапсулирует логику управления транзакциями.
//
// Все транзакции выполняются на уровне SERIALIZABLE: конкурентная запись в те же строки
// заканчивается serialization failure у проигравшей стороны, и Manager прозрачно повторяет
// тело транзакции целиком. Поэтому тело обязано сначала читать, потом писать и не делать
// внешних вызовов.
type Manager struct {
	internal *manager.Manager
	retrier  retrier.Retrier
}

// New создаёт новый менеджер транзакций. maxElapsed ограничивает суммарное время повторов,
// 0 означает значение по умолчанию.
func New(db pgxv5.Transactional, maxElapsed time.Duration) *Manager {
	if maxElapsed <= 0 {
		maxElapsed = defaultMaxElapsedTime
	}

	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: defaultInitialInterval,
			MaxInterval:     defaultMaxInterval,
			MaxElapsedTime:  maxElapsed,
			Randomization:   defaultRandomization,
			Multiplier:      defaultMultiplier,
			ShouldRetry:     IsRetryable,
		}),
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do выполняет fn в транзакции. Вложенный вызов присоединяется к внешней транзакции
// и не ретраится сам: повтор делает только самый внешний Do.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	}

	ctx = context.WithValue(ctx, ctxKey{}, true)
	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	})
}

// InTransaction сообщает, выполняется ли код внутри Manager.Do.
func InTransaction(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKey{}).(bool)
	return v
}

// IsRetryable true для ошибок конфликта транзакций, которые имеет смысл повторить.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == PgErrSerializationFailure || pgErr.Code == PgErrDeadlockDetected
	}
	return false
}
