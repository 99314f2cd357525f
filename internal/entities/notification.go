package entities

import "time"

type NotificationEvent string

const (
	EventOrderCreated    NotificationEvent = "order.created"
	EventOrderConfirmed  NotificationEvent = "order.confirmed"
	EventOrderPreparing  NotificationEvent = "order.preparing"
	EventOrderReady      NotificationEvent = "order.ready"
	EventOrderClaimed    NotificationEvent = "order.claimed"
	EventOrderShipping   NotificationEvent = "order.shipping"
	EventOrderDelivered  NotificationEvent = "order.delivered"
	EventOrderCancelled  NotificationEvent = "order.cancelled"
	EventPaymentPaid     NotificationEvent = "payment.paid"
	EventPaymentRefunded NotificationEvent = "payment.refunded"
	EventPayoutCredited  NotificationEvent = "wallet.payout_credited"
	EventWithdrawalDone  NotificationEvent = "wallet.withdrawal_transferred"
)

func (e NotificationEvent) String() string {
	return string(e)
}

// NotificationIntent намерение уведомить, записанное в outbox в той же транзакции,
// что и бизнес-изменение. Доставка отдельно, ее сбой ничего не откатывает.
type NotificationIntent struct {
	ID           string
	Event        NotificationEvent
	RecipientID  string
	OrderID      *string
	Payload      map[string]any
	Attempts     int
	LastError    *string
	CreatedAt    time.Time
	DispatchedAt *time.Time
}
