package withdrawal

import (
	"time"

	"fulfillment/internal/entities"
)

type WithdrawalDB struct {
	ID           string
	WalletID     string
	OwnerID      string
	Kind         string
	Amount       int64
	BankAccount  string
	Status       string
	RejectReason *string
	CreatedAt    time.Time
	ProcessedAt  *time.Time
}

const withdrawalColumns = `id, wallet_id, owner_id, kind, amount, bank_account, status,
	reject_reason, created_at, processed_at`

func (w *WithdrawalDB) scanTargets() []any {
	return []any{
		&w.ID,
		&w.WalletID,
		&w.OwnerID,
		&w.Kind,
		&w.Amount,
		&w.BankAccount,
		&w.Status,
		&w.RejectReason,
		&w.CreatedAt,
		&w.ProcessedAt,
	}
}

func ToDomain(w *WithdrawalDB) *entities.WithdrawalRequest {
	if w == nil {
		return nil
	}

	return &entities.WithdrawalRequest{
		ID:           w.ID,
		WalletID:     w.WalletID,
		OwnerID:      w.OwnerID,
		Kind:         entities.WalletKind(w.Kind),
		Amount:       w.Amount,
		BankAccount:  w.BankAccount,
		Status:       entities.WithdrawalStatus(w.Status),
		RejectReason: w.RejectReason,
		CreatedAt:    w.CreatedAt,
		ProcessedAt:  w.ProcessedAt,
	}
}
