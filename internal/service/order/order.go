package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/apperr"
	"fulfillment/pkg/logger"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Service машина состояний заказа. Каждый переход это одна транзакция: условное
// обновление строки заказа, побочные изменения (курьер, возврат) и намерение уведомить.
type Service struct {
	repository  Repository
	shippers    ShipperService
	wallets     WalletManager
	timeFactory DeliveryTimeFactory
	intents     IntentFactory
	outbox      Outbox
	txManager   TxManager
	log         serviceLogger
}

func New(
	repository Repository,
	shippers ShipperService,
	wallets WalletManager,
	timeFactory DeliveryTimeFactory,
	intents IntentFactory,
	outbox Outbox,
	txManager TxManager,
	log serviceLogger,
) *Service {
	return &Service{
		repository:  repository,
		shippers:    shippers,
		wallets:     wallets,
		timeFactory: timeFactory,
		intents:     intents,
		outbox:      outbox,
		txManager:   txManager,
		log:         log,
	}
}

func (s *Service) CreateOrder(ctx context.Context, caller entities.Caller, draft entities.OrderDraft) (*entities.Order, error) {
	if !caller.Is(entities.RoleCustomer) {
		return nil, fmt.Errorf("%w: only customers place orders", ErrOrderAccessDenied)
	}
	draft.CustomerID = caller.ID
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:            uuid.NewString(),
		ShopID:        strings.TrimSpace(draft.ShopID),
		OwnerID:       strings.TrimSpace(draft.OwnerID),
		CustomerID:    draft.CustomerID,
		Status:        entities.OrderPending,
		PaymentStatus: entities.OrderPaymentUnpaid,
		PaymentMethod: draft.PaymentMethod,
		Total:         draft.Total,
		ShippingFee:   draft.ShippingFee,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return s.notify(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		logger.NewField("order_id", order.ID),
		logger.NewField("customer_id", order.CustomerID),
		logger.NewField("total", order.Total),
	)
	return &order, nil
}

func (s *Service) GetOrder(ctx context.Context, caller entities.Caller, orderID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !canSee(caller, order) {
		return nil, ErrOrderAccessDenied
	}
	return order, nil
}

// Advance переводит заказ на один шаг вперед. Условие WHERE status = <предшественник>
// гарантирует, что из двух параллельных одинаковых переходов применится один.
func (s *Service) Advance(
	ctx context.Context,
	caller entities.Caller,
	orderID string,
	target entities.OrderStatus,
) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	expected, ok := target.Predecessor()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTargetStatus, target)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !canDrive(caller, order, target) {
			return fmt.Errorf("%w: %s cannot move order to %s", ErrTransitionDenied, caller.Role, target)
		}
		if !order.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: cannot move order to %s: current status %s, expected %s",
				ErrInvalidTransition, target, order.Status, expected)
		}

		modify := entities.OrderModify{
			ID:             order.ID,
			Status:         pointer.To(target),
			StatusAt:       pointer.To(now),
			ExpectedStatus: pointer.To(expected),
		}

		var shipperStatus *entities.ShipperStatusType
		switch target {
		case entities.OrderShipping, entities.OrderDelivered:
			if !order.IsClaimed() || (caller.Is(entities.RoleShipper) && !order.IsClaimedBy(caller.ID)) {
				return fmt.Errorf("%w: cannot move order to %s", ErrNotAssignedShipper, target)
			}
			modify.ExpectedShipperID = order.ShipperID

			if target == entities.OrderShipping {
				shipper, err := s.shippers.GetShipper(ctx, *order.ShipperID)
				if err != nil {
					return fmt.Errorf("get shipper: %w", err)
				}
				// одна поездка на курьера, остальные взятые заказы ждут в READY
				if shipper.Status == entities.ShipperBusy {
					return fmt.Errorf("%w: cannot move order to %s", ErrShipperOnTrip, target)
				}
				modify.EstimatedDeliveryAt = pointer.To(s.timeFactory.EstimateDelivery(shipper.TransportType, now))
				shipperStatus = pointer.To(entities.ShipperBusy)
			} else {
				shipperStatus = pointer.To(entities.ShipperAvailable)
			}
		case entities.OrderConfirmed, entities.OrderPreparing, entities.OrderReady:
		case entities.OrderPending, entities.OrderCancelled:
			return fmt.Errorf("%w: %q", ErrInvalidTargetStatus, target)
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if shipperStatus != nil {
			_, err := s.shippers.UpdateShipper(ctx, entities.ShipperModify{
				ID:     order.ShipperID,
				Status: shipperStatus,
			})
			if err != nil {
				return fmt.Errorf("update shipper status: %w", err)
			}
		}

		return s.notify(ctx, *updated)
	})
	if err != nil {
		s.logRejected("order transition rejected", orderID, err, logger.NewField("target", target.String()))
		return nil, err
	}

	s.log.Info("order status changed",
		logger.NewField("order_id", updated.ID),
		logger.NewField("status", updated.Status.String()),
	)

	if updated.Status == entities.OrderDelivered {
		s.settleAfterDelivery(ctx, updated.ID)
	}

	return updated, nil
}

// Cancel отмена из любого нетерминального статуса. Оплаченный заказ возвращается
// в той же транзакции: либо отмена с возвратом, либо ничего.
func (s *Service) Cancel(ctx context.Context, caller entities.Caller, orderID, reason string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrMissingCancelReason
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !canCancel(caller, order) {
			return ErrOrderAccessDenied
		}

		switch order.Status {
		case entities.OrderDelivered:
			return ErrOrderAlreadyDelivered
		case entities.OrderCancelled:
			return ErrOrderAlreadyCancelled
		case entities.OrderPending, entities.OrderConfirmed, entities.OrderPreparing,
			entities.OrderReady, entities.OrderShipping:
		}
		if !order.Status.CanTransitionTo(entities.OrderCancelled) {
			return fmt.Errorf("%w: cannot cancel order in status %s", ErrInvalidTransition, order.Status)
		}

		if order.PaymentStatus == entities.OrderPaymentPaid {
			if _, err := s.wallets.InitiateRefund(ctx, order.ID, reason); err != nil {
				return fmt.Errorf("refund cancelled order: %w", err)
			}
		}

		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:             order.ID,
			Status:         pointer.To(entities.OrderCancelled),
			StatusAt:       pointer.To(now),
			CancelReason:   pointer.To(reason),
			ExpectedStatus: pointer.To(order.Status),
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if order.Status == entities.OrderShipping && order.IsClaimed() {
			_, err := s.shippers.UpdateShipper(ctx, entities.ShipperModify{
				ID:     order.ShipperID,
				Status: pointer.To(entities.ShipperAvailable),
			})
			if err != nil {
				return fmt.Errorf("release shipper: %w", err)
			}
		}

		return s.notify(ctx, *updated)
	})
	if err != nil {
		s.logRejected("order cancellation rejected", orderID, err)
		return nil, err
	}

	s.log.Info("order cancelled",
		logger.NewField("order_id", updated.ID),
		logger.NewField("payment_status", updated.PaymentStatus.String()),
	)
	return updated, nil
}

func (s *Service) notify(ctx context.Context, order entities.Order) error {
	intents, err := s.intents.OrderStatusChanged(order)
	if err != nil {
		return fmt.Errorf("build notification intents: %w", err)
	}
	if err := s.outbox.Add(ctx, intents...); err != nil {
		return fmt.Errorf("add notification intents: %w", err)
	}
	return nil
}

// settleAfterDelivery хук после коммита DELIVERED. Ошибка выплаты не влияет на доставку:
// заказ подберет периодическая задача расчетов.
func (s *Service) settleAfterDelivery(ctx context.Context, orderID string) {
	result, err := s.wallets.SettleOrder(ctx, orderID)
	if err != nil {
		fields := []logger.Field{
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		}
		if apperr.IsConflict(err) {
			s.log.Info("order not payable yet, left to settlement sweep", fields...)
			return
		}
		s.log.Warn("payout after delivery failed, left to settlement sweep", fields...)
		return
	}

	s.log.Info("order settled after delivery",
		logger.NewField("order_id", orderID),
		logger.NewField("already_paid_out", result.AlreadyPaidOut),
	)
}

// logRejected ожидаемые отказы (конфликт, запрет, валидация) пишутся в warn, остальное в error.
func (s *Service) logRejected(msg, orderID string, err error, fields ...logger.Field) {
	fields = append(fields,
		logger.NewField("order_id", orderID),
		logger.NewField("error", err),
	)
	if apperr.KindOf(err) == apperr.KindInternal {
		s.log.Error(msg, fields...)
		return
	}
	s.log.Warn(msg, fields...)
}
