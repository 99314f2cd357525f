package entities

import "time"

type Payment struct {
	ID              string
	OrderID         string
	Method          PaymentMethod
	Status          PaymentStatus
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

type PaymentStatus string

const (
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentPaid       PaymentStatus = "PAID"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentProcessing, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// CanTransitionTo платеж никогда не откатывается из PAID обратно в PROCESSING.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentProcessing:
		return next == PaymentPaid
	case PaymentPaid:
		return next == PaymentRefunded
	case PaymentRefunded:
		return false
	}
	return false
}

type PaymentModify struct {
	ID string

	Status        *PaymentStatus
	ProviderTxnID *string
	BankRef       *string
	PaidAt        *time.Time
	RefundedAt    *time.Time
	RefundReason  *string

	ExpectedStatus *PaymentStatus
}
