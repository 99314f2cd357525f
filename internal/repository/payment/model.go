package payment

import (
	"time"

	"fulfillment/internal/entities"
)

type PaymentDB struct {
	ID              string
	OrderID         string
	Method          string
	Status          string
	Amount          int64
	CorrelationTag  string
	RequestArtifact string
	ProviderTxnID   *string
	BankRef         *string
	PaidAt          *time.Time
	RefundedAt      *time.Time
	RefundReason    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const paymentColumns = `id, order_id, method, status, amount, correlation_tag, request_artifact,
	provider_txn_id, bank_ref, paid_at, refunded_at, refund_reason, created_at, updated_at`

func (p *PaymentDB) scanTargets() []any {
	return []any{
		&p.ID,
		&p.OrderID,
		&p.Method,
		&p.Status,
		&p.Amount,
		&p.CorrelationTag,
		&p.RequestArtifact,
		&p.ProviderTxnID,
		&p.BankRef,
		&p.PaidAt,
		&p.RefundedAt,
		&p.RefundReason,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}

	return &entities.Payment{
		ID:              p.ID,
		OrderID:         p.OrderID,
		Method:          entities.PaymentMethod(p.Method),
		Status:          entities.PaymentStatus(p.Status),
		Amount:          p.Amount,
		CorrelationTag:  p.CorrelationTag,
		RequestArtifact: p.RequestArtifact,
		ProviderTxnID:   p.ProviderTxnID,
		BankRef:         p.BankRef,
		PaidAt:          p.PaidAt,
		RefundedAt:      p.RefundedAt,
		RefundReason:    p.RefundReason,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
