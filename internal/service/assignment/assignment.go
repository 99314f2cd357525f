package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/apperr"
	"fulfillment/pkg/logger"

	"github.com/AlekSi/pointer"
)

const (
	defaultClaimableLimit = 20
	maxClaimableLimit     = 100
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Coordinator разыгрывает готовые заказы между курьерами. Побеждает ровно один:
// обновление с условием shipper_id IS NULL, проигравший получает конфликт.
type Coordinator struct {
	orders    OrderRepository
	shippers  ShipperService
	intents   IntentFactory
	outbox    Outbox
	txManager TxManager
	log       serviceLogger
}

func New(
	orders OrderRepository,
	shippers ShipperService,
	intents IntentFactory,
	outbox Outbox,
	txManager TxManager,
	log serviceLogger,
) *Coordinator {
	return &Coordinator{
		orders:    orders,
		shippers:  shippers,
		intents:   intents,
		outbox:    outbox,
		txManager: txManager,
		log:       log,
	}
}

// AcceptOrder закрепляет READY заказ за курьером. Статус остается READY,
// поездку курьер начинает отдельным переходом в SHIPPING.
func (c *Coordinator) AcceptOrder(ctx context.Context, orderID, shipperID string) (*entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if strings.TrimSpace(shipperID) == "" {
		return nil, ErrInvalidShipperID
	}

	var (
		claimed  *entities.Order
		repeated bool
	)
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		repeated = false
		order, err := c.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		// повторный accept того же курьера: заказ уже его, ничего не пишем
		if order.IsClaimedBy(shipperID) {
			if order.Status != entities.OrderReady {
				return fmt.Errorf("%w: current status %s", ErrOrderNotReady, order.Status)
			}
			claimed, repeated = order, true
			return nil
		}

		shipper, err := c.shippers.GetShipper(ctx, shipperID)
		if err != nil {
			return fmt.Errorf("get shipper: %w", err)
		}

		if order.IsClaimed() {
			return ErrOrderAlreadyClaimed
		}
		if order.Status != entities.OrderReady {
			return fmt.Errorf("%w: current status %s", ErrOrderNotReady, order.Status)
		}
		if shipper.Status != entities.ShipperAvailable {
			return fmt.Errorf("%w: current status %s", ErrShipperUnavailable, shipper.Status)
		}

		claimed, err = c.orders.Update(ctx, entities.OrderModify{
			ID:               order.ID,
			ShipperID:        pointer.To(shipperID),
			ExpectedStatus:   pointer.To(entities.OrderReady),
			RequireUnclaimed: true,
		})
		if err != nil {
			if errors.Is(err, entities.ErrStaleWrite) {
				return ErrOrderAlreadyClaimed
			}
			return fmt.Errorf("claim order: %w", err)
		}

		if err := c.outbox.Add(ctx, c.intents.OrderClaimed(*claimed)...); err != nil {
			return fmt.Errorf("add notification intents: %w", err)
		}
		return nil
	})
	if err != nil {
		c.logRejected("order acceptance rejected", orderID, shipperID, err)
		return nil, err
	}

	if repeated {
		c.log.Info("order already claimed by this shipper",
			logger.NewField("order_id", orderID),
			logger.NewField("shipper_id", shipperID),
		)
		return claimed, nil
	}

	c.log.Info("order claimed",
		logger.NewField("order_id", orderID),
		logger.NewField("shipper_id", shipperID),
	)
	return claimed, nil
}

// ReleaseOrder курьер отказывается от заказа, пока не начал поездку.
func (c *Coordinator) ReleaseOrder(ctx context.Context, orderID, shipperID string) (*entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if strings.TrimSpace(shipperID) == "" {
		return nil, ErrInvalidShipperID
	}

	var released *entities.Order
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := c.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !order.IsClaimedBy(shipperID) {
			return ErrNotClaimedByShipper
		}
		if order.Status != entities.OrderReady {
			return fmt.Errorf("%w: current status %s", ErrOrderNotReady, order.Status)
		}

		released, err = c.orders.Update(ctx, entities.OrderModify{
			ID:                order.ID,
			ClearShipper:      true,
			ExpectedStatus:    pointer.To(entities.OrderReady),
			ExpectedShipperID: pointer.To(shipperID),
		})
		if err != nil {
			return fmt.Errorf("release order: %w", err)
		}
		return nil
	})
	if err != nil {
		c.logRejected("order release rejected", orderID, shipperID, err)
		return nil, err
	}

	c.log.Info("order released",
		logger.NewField("order_id", orderID),
		logger.NewField("shipper_id", shipperID),
	)
	return released, nil
}

// ListClaimable лента свободных готовых заказов, старые первыми.
func (c *Coordinator) ListClaimable(ctx context.Context, limit int) ([]entities.Order, error) {
	if limit <= 0 {
		limit = defaultClaimableLimit
	}
	if limit > maxClaimableLimit {
		limit = maxClaimableLimit
	}

	orders, err := c.orders.ListClaimable(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list claimable orders: %w", err)
	}
	return orders, nil
}

// logRejected проигрыш гонки за заказ ожидаем и пишется в warn, не в error.
func (c *Coordinator) logRejected(msg, orderID, shipperID string, err error) {
	fields := []logger.Field{
		logger.NewField("order_id", orderID),
		logger.NewField("shipper_id", shipperID),
		logger.NewField("error", err),
	}
	if apperr.KindOf(err) == apperr.KindInternal {
		c.log.Error(msg, fields...)
		return
	}
	c.log.Warn(msg, fields...)
}
