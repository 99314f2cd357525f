package notification_intent

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"

	"github.com/google/uuid"
)

var ErrUndefinedStatus = errors.New("undefined order status")

// IntentFactory решает, кого и о чем уведомить. Намерения пишутся в outbox
// в той же транзакции, что и изменение, поэтому фабрика не делает никаких вызовов.
type IntentFactory struct {
	now func() time.Time
}

func New() *IntentFactory {
	return &IntentFactory{
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (f *IntentFactory) OrderStatusChanged(order entities.Order) ([]entities.NotificationIntent, error) {
	payload := map[string]any{
		"status": order.Status.String(),
	}

	switch order.Status {
	case entities.OrderPending:
		return f.build(entities.EventOrderCreated, &order.ID, payload, order.OwnerID), nil
	case entities.OrderConfirmed:
		return f.build(entities.EventOrderConfirmed, &order.ID, payload, order.CustomerID), nil
	case entities.OrderPreparing:
		return f.build(entities.EventOrderPreparing, &order.ID, payload, order.CustomerID), nil
	case entities.OrderReady:
		return f.build(entities.EventOrderReady, &order.ID, payload, order.CustomerID), nil
	case entities.OrderShipping:
		if order.EstimatedDeliveryAt != nil {
			payload["estimated_delivery_at"] = order.EstimatedDeliveryAt.Format(time.RFC3339)
		}
		return f.build(entities.EventOrderShipping, &order.ID, payload, order.CustomerID), nil
	case entities.OrderDelivered:
		return f.build(entities.EventOrderDelivered, &order.ID, payload, order.CustomerID, order.OwnerID), nil
	case entities.OrderCancelled:
		if order.CancelReason != nil {
			payload["reason"] = *order.CancelReason
		}
		recipients := []string{order.CustomerID, order.OwnerID}
		if order.IsClaimed() {
			recipients = append(recipients, *order.ShipperID)
		}
		return f.build(entities.EventOrderCancelled, &order.ID, payload, recipients...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, order.Status)
	}
}

func (f *IntentFactory) OrderClaimed(order entities.Order) []entities.NotificationIntent {
	payload := map[string]any{}
	if order.ShipperID != nil {
		payload["shipper_id"] = *order.ShipperID
	}
	return f.build(entities.EventOrderClaimed, &order.ID, payload, order.CustomerID, order.OwnerID)
}

func (f *IntentFactory) PaymentPaid(order entities.Order, payment entities.Payment) []entities.NotificationIntent {
	payload := map[string]any{
		"payment_id": payment.ID,
		"method":     payment.Method.String(),
		"amount":     payment.Amount,
	}
	return f.build(entities.EventPaymentPaid, &order.ID, payload, order.CustomerID, order.OwnerID)
}

func (f *IntentFactory) PaymentRefunded(order entities.Order, payment entities.Payment) []entities.NotificationIntent {
	payload := map[string]any{
		"payment_id": payment.ID,
		"amount":     payment.Amount,
	}
	if payment.RefundReason != nil {
		payload["reason"] = *payment.RefundReason
	}
	return f.build(entities.EventPaymentRefunded, &order.ID, payload, order.CustomerID)
}

func (f *IntentFactory) PayoutCredited(wallet entities.Wallet, entry entities.LedgerEntry) []entities.NotificationIntent {
	payload := map[string]any{
		"wallet_id": wallet.ID,
		"amount":    entry.Amount,
		"balance":   entry.BalanceAfter,
	}
	return f.build(entities.EventPayoutCredited, entry.OrderID, payload, wallet.OwnerID)
}

func (f *IntentFactory) WithdrawalTransferred(request entities.WithdrawalRequest) []entities.NotificationIntent {
	payload := map[string]any{
		"withdrawal_id": request.ID,
		"amount":        request.Amount,
	}
	return f.build(entities.EventWithdrawalDone, nil, payload, request.OwnerID)
}

func (f *IntentFactory) build(
	event entities.NotificationEvent,
	orderID *string,
	payload map[string]any,
	recipients ...string,
) []entities.NotificationIntent {
	now := f.now()
	intents := make([]entities.NotificationIntent, 0, len(recipients))
	for _, recipient := range recipients {
		if recipient == "" {
			continue
		}
		intents = append(intents, entities.NotificationIntent{
			ID:          uuid.NewString(),
			Event:       event,
			RecipientID: recipient,
			OrderID:     orderID,
			Payload:     payload,
			CreatedAt:   now,
		})
	}
	return intents
}
