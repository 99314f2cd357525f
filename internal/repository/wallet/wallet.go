package wallet

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	constraintBalanceNonNegative = "wallets_balance_non_negative"
	constraintPayoutOnce         = "idx_ledger_entries_payout_once"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Wallet, error) {
	query := `SELECT id, owner_id, kind, balance, total_earned, total_withdrawn, created_at, updated_at
		FROM wallets
		WHERE id = $1`

	var walletModel WalletDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&walletModel.ID,
			&walletModel.OwnerID,
			&walletModel.Kind,
			&walletModel.Balance,
			&walletModel.TotalEarned,
			&walletModel.TotalWithdrawn,
			&walletModel.CreatedAt,
			&walletModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrWalletNotFound
		}

		return nil, fmt.Errorf("unexpected wallet repository getbyid error: %w", err)
	}

	return ToDomain(&walletModel), nil
}

// Save создает кошелек, если его нет, иначе перезаписывает суммы. Вызывается только
// в транзакции, которая перед этим прочитала кошелек.
func (r *Repository) Save(ctx context.Context, wallet entities.Wallet) error {
	query := `INSERT INTO wallets (id, owner_id, kind, balance, total_earned, total_withdrawn, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			balance = EXCLUDED.balance,
			total_earned = EXCLUDED.total_earned,
			total_withdrawn = EXCLUDED.total_withdrawn,
			updated_at = EXCLUDED.updated_at`

	_, err := r.querier.Exec(
		ctx,
		query,
		wallet.ID,
		wallet.OwnerID,
		wallet.Kind.String(),
		wallet.Balance,
		wallet.TotalEarned,
		wallet.TotalWithdrawn,
		wallet.CreatedAt,
		wallet.UpdatedAt,
	)
	if err != nil {
		if repository.IsConstraintViolation(err, repository.PgErrCheckViolation, constraintBalanceNonNegative) {
			return entities.ErrInsufficientBalance
		}
		return fmt.Errorf("unexpected wallet repository save error: %w", err)
	}

	return nil
}

// AppendLedgerEntries пишет проводки одним INSERT. Проводки никогда не обновляются.
func (r *Repository) AppendLedgerEntries(ctx context.Context, entries []entities.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	builder := qb.
		Insert("ledger_entries").
		Columns("id", "wallet_id", "type", "amount", "balance_before", "balance_after",
			"order_id", "withdrawal_id", "note", "created_at")

	for _, e := range entries {
		builder = builder.Values(
			e.ID,
			e.WalletID,
			e.Type.String(),
			e.Amount,
			e.BalanceBefore,
			e.BalanceAfter,
			e.OrderID,
			e.WithdrawalID,
			e.Note,
			e.CreatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected wallet repository appendledgerentries error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		// вторая выплата по тому же заказу: параллельный settle уже записал свою
		if repository.IsConstraintViolation(err, repository.PgErrUniqueViolation, constraintPayoutOnce) {
			return entities.ErrStaleWrite
		}
		return fmt.Errorf("unexpected wallet repository appendledgerentries error: %w", err)
	}

	return nil
}

// ListLedgerEntries проводки кошелька, последние первыми. limit <= 0 - все, в порядке создания.
func (r *Repository) ListLedgerEntries(ctx context.Context, walletID string, limit int) ([]entities.LedgerEntry, error) {
	builder := qb.
		Select("seq", "id", "wallet_id", "type", "amount", "balance_before", "balance_after",
			"order_id", "withdrawal_id", "note", "created_at").
		From("ledger_entries").
		Where(sq.Eq{"wallet_id": walletID})

	if limit > 0 {
		builder = builder.OrderBy("seq DESC").Limit(uint64(limit))
	} else {
		builder = builder.OrderBy("seq")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository listledgerentries error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository listledgerentries error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.LedgerEntry, 0, 8)
	for rows.Next() {
		var e LedgerEntryDB
		err := rows.Scan(
			&e.Seq,
			&e.ID,
			&e.WalletID,
			&e.Type,
			&e.Amount,
			&e.BalanceBefore,
			&e.BalanceAfter,
			&e.OrderID,
			&e.WithdrawalID,
			&e.Note,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected wallet repository listledgerentries error: %w", err)
		}
		entries = append(entries, LedgerToDomain(&e))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected wallet repository listledgerentries error: %w", err)
	}

	return entries, nil
}
