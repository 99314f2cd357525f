package entities

import "time"

type Order struct {
	ID            string
	ShopID        string
	OwnerID       string
	CustomerID    string
	ShipperID     *string
	Status        OrderStatus
	PaymentStatus OrderPaymentStatus
	PaymentMethod PaymentMethod
	Total         int64
	ShippingFee   int64
	PaidOut       bool
	PaidOutAt     *time.Time
	CancelReason  *string

	EstimatedDeliveryAt *time.Time

	CreatedAt   time.Time
	ConfirmedAt *time.Time
	PreparingAt *time.Time
	ReadyAt     *time.Time
	ShippingAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	UpdatedAt   time.Time
}

// IsClaimed заказ забрал курьер, но статус может оставаться READY.
func (o *Order) IsClaimed() bool {
	return o.ShipperID != nil && *o.ShipperID != ""
}

func (o *Order) IsClaimedBy(shipperID string) bool {
	return o.IsClaimed() && *o.ShipperID == shipperID
}

// PayoutEligible доставлен, оплачен и еще не выплачен.
func (o *Order) PayoutEligible() bool {
	return o.Status == OrderDelivered && o.PaymentStatus == OrderPaymentPaid && !o.PaidOut
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderShipping  OrderStatus = "SHIPPING"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
		OrderShipping, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderDelivered, OrderCancelled:
		return true
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderShipping:
		return false
	}
	return false
}

// CanTransitionTo таблица переходов: один шаг вперед или отмена из любого нетерминального.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == OrderCancelled {
		return s.Valid() && !s.IsTerminal()
	}

	prev, ok := next.Predecessor()
	return ok && prev == s
}

// Predecessor статус, из которого прямым переходом попадают в s.
// Для PENDING (начальный) и CANCELLED (из любого) предшественника нет.
func (s OrderStatus) Predecessor() (OrderStatus, bool) {
	switch s {
	case OrderConfirmed:
		return OrderPending, true
	case OrderPreparing:
		return OrderConfirmed, true
	case OrderReady:
		return OrderPreparing, true
	case OrderShipping:
		return OrderReady, true
	case OrderDelivered:
		return OrderShipping, true
	case OrderPending, OrderCancelled:
		return "", false
	}
	return "", false
}

type OrderPaymentStatus string

const (
	OrderPaymentUnpaid     OrderPaymentStatus = "UNPAID"
	OrderPaymentProcessing OrderPaymentStatus = "PROCESSING"
	OrderPaymentPaid       OrderPaymentStatus = "PAID"
	OrderPaymentRefunded   OrderPaymentStatus = "REFUNDED"
)

func (s OrderPaymentStatus) String() string {
	return string(s)
}

func (s OrderPaymentStatus) Valid() bool {
	switch s {
	case OrderPaymentUnpaid, OrderPaymentProcessing, OrderPaymentPaid, OrderPaymentRefunded:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCOD        PaymentMethod = "COD"
	PaymentMethodTransferQR PaymentMethod = "TRANSFER_QR"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodTransferQR:
		return true
	}
	return false
}

// OrderDraft данные нового заказа от оформления корзины.
type OrderDraft struct {
	ShopID string
	// OwnerID получатель выплаты. Приходит от каталога, сервис принадлежность магазину не проверяет.
	OwnerID       string
	CustomerID    string
	PaymentMethod PaymentMethod
	Total         int64
	ShippingFee   int64
}

// OrderModify частичное обновление заказа. Поля Expected*/Require* превращаются в условия
// WHERE: если строка успела измениться, обновление не применяется.
type OrderModify struct {
	ID string

	Status        *OrderStatus
	StatusAt      *time.Time
	PaymentStatus *OrderPaymentStatus
	ShipperID     *string
	ClearShipper  bool
	PaidOut       *bool
	PaidOutAt     *time.Time
	CancelReason  *string

	EstimatedDeliveryAt *time.Time

	ExpectedStatus        *OrderStatus
	ExpectedPaymentStatus *OrderPaymentStatus
	ExpectedShipperID     *string
	RequireUnclaimed      bool
	RequireNotPaidOut     bool
}
