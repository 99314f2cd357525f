package inmemory

import (
	"context"
	"time"

	"fulfillment/internal/entities"
)

type PaymentRepository struct {
	store *Store
}

func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{store: s}
}

func (r *PaymentRepository) Create(ctx context.Context, payment entities.Payment) error {
	return r.store.write(ctx, func(st *state) error {
		for _, p := range st.payments {
			if p.ID == payment.ID || p.OrderID == payment.OrderID || p.CorrelationTag == payment.CorrelationTag {
				return entities.ErrPaymentAlreadyExists
			}
		}
		if payment.CreatedAt.IsZero() {
			payment.CreatedAt = time.Now().UTC()
		}
		payment.UpdatedAt = payment.CreatedAt
		st.payments[payment.ID] = payment
		return nil
	})
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*entities.Payment, error) {
	return r.find(ctx, func(p entities.Payment) bool { return p.OrderID == orderID })
}

func (r *PaymentRepository) GetByCorrelationTag(ctx context.Context, tag string) (*entities.Payment, error) {
	return r.find(ctx, func(p entities.Payment) bool { return p.CorrelationTag == tag })
}

func (r *PaymentRepository) find(ctx context.Context, match func(entities.Payment) bool) (*entities.Payment, error) {
	var found *entities.Payment
	err := r.store.read(ctx, func(st *state) error {
		for _, p := range st.payments {
			if match(p) {
				p := p
				found = &p
				return nil
			}
		}
		return entities.ErrPaymentNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *PaymentRepository) Update(ctx context.Context, modify entities.PaymentModify) (*entities.Payment, error) {
	var updated entities.Payment
	err := r.store.write(ctx, func(st *state) error {
		p, ok := st.payments[modify.ID]
		if !ok {
			return entities.ErrStaleWrite
		}
		if modify.ExpectedStatus != nil && p.Status != *modify.ExpectedStatus {
			return entities.ErrStaleWrite
		}
		if modify.ProviderTxnID != nil {
			for _, other := range st.payments {
				if other.ID != p.ID && other.ProviderTxnID != nil && *other.ProviderTxnID == *modify.ProviderTxnID {
					return entities.ErrTransferAlreadyUsed
				}
			}
		}

		if modify.Status != nil {
			p.Status = *modify.Status
		}
		if modify.ProviderTxnID != nil {
			v := *modify.ProviderTxnID
			p.ProviderTxnID = &v
		}
		if modify.BankRef != nil {
			v := *modify.BankRef
			p.BankRef = &v
		}
		if modify.PaidAt != nil {
			v := *modify.PaidAt
			p.PaidAt = &v
		}
		if modify.RefundedAt != nil {
			v := *modify.RefundedAt
			p.RefundedAt = &v
		}
		if modify.RefundReason != nil {
			v := *modify.RefundReason
			p.RefundReason = &v
		}
		p.UpdatedAt = time.Now().UTC()

		st.payments[p.ID] = p
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
