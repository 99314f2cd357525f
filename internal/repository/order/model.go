package order

import "time"

type OrderDB struct {
	ID                  string
	ShopID              string
	OwnerID             string
	CustomerID          string
	ShipperID           *string
	Status              string
	PaymentStatus       string
	PaymentMethod       string
	Total               int64
	ShippingFee         int64
	PaidOut             bool
	PaidOutAt           *time.Time
	CancelReason        *string
	EstimatedDeliveryAt *time.Time
	CreatedAt           time.Time
	ConfirmedAt         *time.Time
	PreparingAt         *time.Time
	ReadyAt             *time.Time
	ShippingAt          *time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
	UpdatedAt           time.Time
}

const orderColumns = `id, shop_id, owner_id, customer_id, shipper_id, status, payment_status,
	payment_method, total, shipping_fee, paid_out, paid_out_at, cancel_reason,
	estimated_delivery_at, created_at, confirmed_at, preparing_at, ready_at,
	shipping_at, delivered_at, cancelled_at, updated_at`

func (o *OrderDB) scanTargets() []any {
	return []any{
		&o.ID,
		&o.ShopID,
		&o.OwnerID,
		&o.CustomerID,
		&o.ShipperID,
		&o.Status,
		&o.PaymentStatus,
		&o.PaymentMethod,
		&o.Total,
		&o.ShippingFee,
		&o.PaidOut,
		&o.PaidOutAt,
		&o.CancelReason,
		&o.EstimatedDeliveryAt,
		&o.CreatedAt,
		&o.ConfirmedAt,
		&o.PreparingAt,
		&o.ReadyAt,
		&o.ShippingAt,
		&o.DeliveredAt,
		&o.CancelledAt,
		&o.UpdatedAt,
	}
}
