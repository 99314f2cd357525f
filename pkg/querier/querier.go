package querier

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier выполняет запросы в транзакции из контекста, если она открыта через tx.Manager,
// иначе напрямую в пуле. Репозитории не знают, в транзакции они или нет.
type Querier struct {
	db     pgxv5.Tr
	getter *pgxv5.CtxGetter
}

// New принимает пул (или любую реализацию pgxv5.Tr) и getter транзакции из контекста.
func New(db pgxv5.Tr, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		db:     db,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.executor(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.executor(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.executor(ctx).QueryRow(ctx, sql, args...)
}

func (q *Querier) executor(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.db)
}
