package inmemory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fulfillment/internal/entities"
)

type OrderRepository struct {
	store *Store
}

func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{store: s}
}

func (r *OrderRepository) Create(ctx context.Context, order entities.Order) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.orders[order.ID]; ok {
			return fmt.Errorf("inmemory: order %s already exists", order.ID)
		}
		if order.CreatedAt.IsZero() {
			order.CreatedAt = time.Now().UTC()
		}
		order.UpdatedAt = order.CreatedAt
		st.orders[order.ID] = order
		return nil
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	err := r.store.read(ctx, func(st *state) error {
		o, ok := st.orders[id]
		if !ok {
			return entities.ErrOrderNotFound
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Update(ctx context.Context, modify entities.OrderModify) (*entities.Order, error) {
	var updated entities.Order
	err := r.store.write(ctx, func(st *state) error {
		o, ok := st.orders[modify.ID]
		if !ok || !orderMatches(o, modify) {
			return entities.ErrStaleWrite
		}

		applyOrderModify(&o, modify)

		if o.PaidOut && (o.Status != entities.OrderDelivered ||
			(o.PaymentStatus != entities.OrderPaymentPaid && o.PaymentStatus != entities.OrderPaymentRefunded)) {
			return fmt.Errorf("inmemory: order %s violates paid_out constraint", o.ID)
		}

		st.orders[o.ID] = o
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *OrderRepository) ListClaimable(ctx context.Context, limit int) ([]entities.Order, error) {
	return r.list(ctx, limit, func(o entities.Order) bool {
		return o.Status == entities.OrderReady && !o.IsClaimed()
	}, func(o entities.Order) time.Time {
		return o.CreatedAt
	})
}

func (r *OrderRepository) ListUnsettled(ctx context.Context, limit int) ([]entities.Order, error) {
	return r.list(ctx, limit, func(o entities.Order) bool {
		return o.PayoutEligible()
	}, func(o entities.Order) time.Time {
		if o.DeliveredAt == nil {
			return time.Time{}
		}
		return *o.DeliveredAt
	})
}

func (r *OrderRepository) list(
	ctx context.Context,
	limit int,
	match func(entities.Order) bool,
	sortKey func(entities.Order) time.Time,
) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	err := r.store.read(ctx, func(st *state) error {
		for _, o := range st.orders {
			if match(o) {
				orders = append(orders, o)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return sortKey(orders[i]).Before(sortKey(orders[j]))
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func orderMatches(o entities.Order, modify entities.OrderModify) bool {
	if modify.ExpectedStatus != nil && o.Status != *modify.ExpectedStatus {
		return false
	}
	if modify.ExpectedPaymentStatus != nil && o.PaymentStatus != *modify.ExpectedPaymentStatus {
		return false
	}
	if modify.ExpectedShipperID != nil && !o.IsClaimedBy(*modify.ExpectedShipperID) {
		return false
	}
	if modify.RequireUnclaimed && o.IsClaimed() {
		return false
	}
	if modify.RequireNotPaidOut && o.PaidOut {
		return false
	}
	return true
}

func applyOrderModify(o *entities.Order, modify entities.OrderModify) {
	if modify.Status != nil {
		o.Status = *modify.Status
		if modify.StatusAt != nil {
			at := *modify.StatusAt
			switch *modify.Status {
			case entities.OrderConfirmed:
				o.ConfirmedAt = &at
			case entities.OrderPreparing:
				o.PreparingAt = &at
			case entities.OrderReady:
				o.ReadyAt = &at
			case entities.OrderShipping:
				o.ShippingAt = &at
			case entities.OrderDelivered:
				o.DeliveredAt = &at
			case entities.OrderCancelled:
				o.CancelledAt = &at
			case entities.OrderPending:
			}
		}
	}
	if modify.PaymentStatus != nil {
		o.PaymentStatus = *modify.PaymentStatus
	}
	if modify.ShipperID != nil {
		id := *modify.ShipperID
		o.ShipperID = &id
	}
	if modify.ClearShipper {
		o.ShipperID = nil
	}
	if modify.PaidOut != nil {
		o.PaidOut = *modify.PaidOut
	}
	if modify.PaidOutAt != nil {
		at := *modify.PaidOutAt
		o.PaidOutAt = &at
	}
	if modify.CancelReason != nil {
		reason := *modify.CancelReason
		o.CancelReason = &reason
	}
	if modify.EstimatedDeliveryAt != nil {
		at := *modify.EstimatedDeliveryAt
		o.EstimatedDeliveryAt = &at
	}
	o.UpdatedAt = time.Now().UTC()
}
