package shipper

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

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipperModifyEntity entities.ShipperModify) (*entities.Shipper, error) {
	shipperModifyModel := FromDomainModify(&shipperModifyEntity)
	query := `INSERT INTO shippers (id, name, phone, status, transport_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, phone, status, transport_type, created_at, updated_at`

	var shipperModel ShipperDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipperModifyModel.ID,
		shipperModifyModel.Name,
		shipperModifyModel.Phone,
		shipperModifyModel.Status,
		shipperModifyModel.TransportType,
	).Scan(
		&shipperModel.ID,
		&shipperModel.Name,
		&shipperModel.Phone,
		&shipperModel.Status,
		&shipperModel.TransportType,
		&shipperModel.CreatedAt,
		&shipperModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrShipperAlreadyExists
		}
		return nil, fmt.Errorf("unexpected shipper repository create error: %w", err)
	}

	return ToDomain(&shipperModel), nil
}

func (r *Repository) Update(ctx context.Context, shipperModifyEntity entities.ShipperModify) (*entities.Shipper, error) {
	if shipperModifyEntity.ID == nil {
		return nil, entities.ErrShipperNotFound
	}
	shipperModifyModel := FromDomainModify(&shipperModifyEntity)

	builder := qb.
		Update("shippers")

	// опциональные поля
	if shipperModifyModel.Name != nil {
		builder = builder.Set("name", shipperModifyModel.Name)
	}
	if shipperModifyModel.Phone != nil {
		builder = builder.Set("phone", shipperModifyModel.Phone)
	}
	if shipperModifyModel.Status != nil {
		builder = builder.Set("status", shipperModifyModel.Status)
	}
	if shipperModifyModel.TransportType != nil {
		builder = builder.Set("transport_type", shipperModifyModel.TransportType)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": *shipperModifyModel.ID}).
		Suffix("RETURNING id, name, phone, status, transport_type, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipper repository update error: %w", err)
	}

	var shipperModel ShipperDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&shipperModel.ID,
			&shipperModel.Name,
			&shipperModel.Phone,
			&shipperModel.Status,
			&shipperModel.TransportType,
			&shipperModel.CreatedAt,
			&shipperModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrShipperNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrShipperAlreadyExists
		}

		return nil, fmt.Errorf("unexpected shipper repository update error: %w", err)
	}

	return ToDomain(&shipperModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Shipper, error) {
	query := `SELECT id, name, phone, status, transport_type, created_at, updated_at
		FROM shippers
		WHERE id = $1`

	var shipperModel ShipperDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&shipperModel.ID,
			&shipperModel.Name,
			&shipperModel.Phone,
			&shipperModel.Status,
			&shipperModel.TransportType,
			&shipperModel.CreatedAt,
			&shipperModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrShipperNotFound
		}

		return nil, fmt.Errorf("unexpected shipper repository getbyid error: %w", err)
	}

	return ToDomain(&shipperModel), nil
}
