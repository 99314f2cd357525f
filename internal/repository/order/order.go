package order

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

func (r *Repository) Create(ctx context.Context, order entities.Order) error {
	query := `INSERT INTO orders (id, shop_id, owner_id, customer_id, status, payment_status,
		payment_method, total, shipping_fee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

	_, err := r.querier.Exec(
		ctx,
		query,
		order.ID,
		order.ShopID,
		order.OwnerID,
		order.CustomerID,
		order.Status.String(),
		order.PaymentStatus.String(),
		order.PaymentMethod.String(),
		order.Total,
		order.ShippingFee,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(orderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// Update применяет частичное изменение с условиями из Expected*/Require*.
// Если строка не в ожидаемом состоянии, возвращает entities.ErrStaleWrite.
func (r *Repository) Update(ctx context.Context, modify entities.OrderModify) (*entities.Order, error) {
	builder := qb.Update("orders")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
		if column, ok := statusColumn(*modify.Status); ok && modify.StatusAt != nil {
			builder = builder.Set(column, *modify.StatusAt)
		}
	}
	if modify.PaymentStatus != nil {
		builder = builder.Set("payment_status", modify.PaymentStatus.String())
	}
	if modify.ShipperID != nil {
		builder = builder.Set("shipper_id", *modify.ShipperID)
	}
	if modify.ClearShipper {
		builder = builder.Set("shipper_id", nil)
	}
	if modify.PaidOut != nil {
		builder = builder.Set("paid_out", *modify.PaidOut)
	}
	if modify.PaidOutAt != nil {
		builder = builder.Set("paid_out_at", *modify.PaidOutAt)
	}
	if modify.CancelReason != nil {
		builder = builder.Set("cancel_reason", *modify.CancelReason)
	}
	if modify.EstimatedDeliveryAt != nil {
		builder = builder.Set("estimated_delivery_at", *modify.EstimatedDeliveryAt)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": modify.ID})

	// условия по текущему состоянию строки
	if modify.ExpectedStatus != nil {
		builder = builder.Where(sq.Eq{"status": modify.ExpectedStatus.String()})
	}
	if modify.ExpectedPaymentStatus != nil {
		builder = builder.Where(sq.Eq{"payment_status": modify.ExpectedPaymentStatus.String()})
	}
	if modify.ExpectedShipperID != nil {
		builder = builder.Where(sq.Eq{"shipper_id": *modify.ExpectedShipperID})
	}
	if modify.RequireUnclaimed {
		builder = builder.Where(sq.Eq{"shipper_id": nil})
	}
	if modify.RequireNotPaidOut {
		builder = builder.Where(sq.Eq{"paid_out": false})
	}

	query, args, err := builder.
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(orderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrStaleWrite
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// ListClaimable READY заказы без курьера, старые первыми.
func (r *Repository) ListClaimable(ctx context.Context, limit int) ([]entities.Order, error) {
	return r.list(ctx, "listclaimable",
		sq.And{
			sq.Eq{"status": entities.OrderReady.String()},
			sq.Eq{"shipper_id": nil},
		},
		"created_at", limit,
	)
}

// ListUnsettled доставленные и оплаченные заказы, по которым еще не было выплаты.
func (r *Repository) ListUnsettled(ctx context.Context, limit int) ([]entities.Order, error) {
	return r.list(ctx, "listunsettled",
		sq.And{
			sq.Eq{"status": entities.OrderDelivered.String()},
			sq.Eq{"payment_status": entities.OrderPaymentPaid.String()},
			sq.Eq{"paid_out": false},
		},
		"delivered_at", limit,
	)
}

func (r *Repository) list(ctx context.Context, op string, where sq.Sqlizer, orderBy string, limit int) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns).
		From("orders").
		Where(where).
		OrderBy(orderBy).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, limit)
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(orderModel.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}

	return ToDomainList(orderModels), nil
}
