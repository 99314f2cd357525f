package payment

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const constraintProviderTxnID = "payments_provider_txn_id_key"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, payment entities.Payment) error {
	query := `INSERT INTO payments (id, order_id, method, status, amount, correlation_tag,
		request_artifact, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

	_, err := r.querier.Exec(
		ctx,
		query,
		payment.ID,
		payment.OrderID,
		payment.Method.String(),
		payment.Status.String(),
		payment.Amount,
		payment.CorrelationTag,
		payment.RequestArtifact,
		payment.PaidAt,
		payment.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return entities.ErrPaymentAlreadyExists
		}
		return fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Payment, error) {
	return r.getBy(ctx, "getbyorderid", "order_id", orderID)
}

func (r *Repository) GetByCorrelationTag(ctx context.Context, tag string) (*entities.Payment, error) {
	return r.getBy(ctx, "getbycorrelationtag", "correlation_tag", tag)
}

func (r *Repository) getBy(ctx context.Context, op, column, value string) (*entities.Payment, error) {
	query, args, err := qb.
		Select(paymentColumns).
		From("payments").
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository %s error: %w", op, err)
	}

	var paymentModel PaymentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(paymentModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPaymentNotFound
		}

		return nil, fmt.Errorf("unexpected payment repository %s error: %w", op, err)
	}

	return ToDomain(&paymentModel), nil
}

// Update условное обновление. Переход статуса применяется только из ExpectedStatus,
// поэтому PAID никогда не перезаписывается обратно в PROCESSING.
func (r *Repository) Update(ctx context.Context, modify entities.PaymentModify) (*entities.Payment, error) {
	builder := qb.Update("payments")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.ProviderTxnID != nil {
		builder = builder.Set("provider_txn_id", *modify.ProviderTxnID)
	}
	if modify.BankRef != nil {
		builder = builder.Set("bank_ref", *modify.BankRef)
	}
	if modify.PaidAt != nil {
		builder = builder.Set("paid_at", *modify.PaidAt)
	}
	if modify.RefundedAt != nil {
		builder = builder.Set("refunded_at", *modify.RefundedAt)
	}
	if modify.RefundReason != nil {
		builder = builder.Set("refund_reason", *modify.RefundReason)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": modify.ID})

	if modify.ExpectedStatus != nil {
		builder = builder.Where(sq.Eq{"status": modify.ExpectedStatus.String()})
	}

	query, args, err := builder.
		Suffix("RETURNING " + paymentColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository update error: %w", err)
	}

	var paymentModel PaymentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(paymentModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrStaleWrite
		}

		if repository.IsConstraintViolation(err, repository.PgErrUniqueViolation, constraintProviderTxnID) {
			return nil, entities.ErrTransferAlreadyUsed
		}

		return nil, fmt.Errorf("unexpected payment repository update error: %w", err)
	}

	return ToDomain(&paymentModel), nil
}
