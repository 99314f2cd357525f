package withdrawal

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, request entities.WithdrawalRequest) error {
	query := `INSERT INTO withdrawal_requests (id, wallet_id, owner_id, kind, amount, bank_account, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.querier.Exec(
		ctx,
		query,
		request.ID,
		request.WalletID,
		request.OwnerID,
		request.Kind.String(),
		request.Amount,
		request.BankAccount,
		request.Status.String(),
		request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected withdrawal repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + `
		FROM withdrawal_requests
		WHERE id = $1`

	var model WithdrawalDB
	err := r.querier.QueryRow(ctx, query, id).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrWithdrawalNotFound
		}

		return nil, fmt.Errorf("unexpected withdrawal repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Update(ctx context.Context, modify entities.WithdrawalModify) (*entities.WithdrawalRequest, error) {
	builder := qb.Update("withdrawal_requests")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.RejectReason != nil {
		builder = builder.Set("reject_reason", *modify.RejectReason)
	}
	if modify.ProcessedAt != nil {
		builder = builder.Set("processed_at", *modify.ProcessedAt)
	}

	builder = builder.Where(sq.Eq{"id": modify.ID})
	if modify.ExpectedStatus != nil {
		builder = builder.Where(sq.Eq{"status": modify.ExpectedStatus.String()})
	}

	query, args, err := builder.
		Suffix("RETURNING " + withdrawalColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository update error: %w", err)
	}

	var model WithdrawalDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrStaleWrite
		}

		return nil, fmt.Errorf("unexpected withdrawal repository update error: %w", err)
	}

	return ToDomain(&model), nil
}

// ListPendingByWallet заявки кошелька в статусе PENDING.
func (r *Repository) ListPendingByWallet(ctx context.Context, walletID string) ([]entities.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + `
		FROM withdrawal_requests
		WHERE wallet_id = $1 AND status = $2
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, walletID, entities.WithdrawalPending.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository listpendingbywallet error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.WithdrawalRequest, 0, 4)
	for rows.Next() {
		var model WithdrawalDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected withdrawal repository listpendingbywallet error: %w", err)
		}
		result = append(result, *ToDomain(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository listpendingbywallet error: %w", err)
	}

	return result, nil
}
