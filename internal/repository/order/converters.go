package order

import (
	"fulfillment/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                  o.ID,
		ShopID:              o.ShopID,
		OwnerID:             o.OwnerID,
		CustomerID:          o.CustomerID,
		ShipperID:           o.ShipperID,
		Status:              entities.OrderStatus(o.Status),
		PaymentStatus:       entities.OrderPaymentStatus(o.PaymentStatus),
		PaymentMethod:       entities.PaymentMethod(o.PaymentMethod),
		Total:               o.Total,
		ShippingFee:         o.ShippingFee,
		PaidOut:             o.PaidOut,
		PaidOutAt:           o.PaidOutAt,
		CancelReason:        o.CancelReason,
		EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		CreatedAt:           o.CreatedAt,
		ConfirmedAt:         o.ConfirmedAt,
		PreparingAt:         o.PreparingAt,
		ReadyAt:             o.ReadyAt,
		ShippingAt:          o.ShippingAt,
		DeliveredAt:         o.DeliveredAt,
		CancelledAt:         o.CancelledAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}

// statusColumn колонка штампа времени для статуса. PENDING штампуется created_at при вставке.
func statusColumn(s entities.OrderStatus) (string, bool) {
	switch s {
	case entities.OrderConfirmed:
		return "confirmed_at", true
	case entities.OrderPreparing:
		return "preparing_at", true
	case entities.OrderReady:
		return "ready_at", true
	case entities.OrderShipping:
		return "shipping_at", true
	case entities.OrderDelivered:
		return "delivered_at", true
	case entities.OrderCancelled:
		return "cancelled_at", true
	case entities.OrderPending:
		return "", false
	}
	return "", false
}
