package entities

import "time"

type WithdrawalRequest struct {
	ID           string
	WalletID     string
	OwnerID      string
	Kind         WalletKind
	Amount       int64
	BankAccount  string
	Status       WithdrawalStatus
	RejectReason *string
	CreatedAt    time.Time
	ProcessedAt  *time.Time
}

type WithdrawalStatus string

const (
	WithdrawalPending     WithdrawalStatus = "PENDING"
	WithdrawalTransferred WithdrawalStatus = "TRANSFERRED"
	WithdrawalRejected    WithdrawalStatus = "REJECTED"
)

func (s WithdrawalStatus) String() string {
	return string(s)
}

type WithdrawalModify struct {
	ID string

	Status       *WithdrawalStatus
	RejectReason *string
	ProcessedAt  *time.Time

	ExpectedStatus *WithdrawalStatus
}
