package wallet

import (
	"time"

	"fulfillment/internal/entities"
)

type WalletDB struct {
	ID             string
	OwnerID        string
	Kind           string
	Balance        int64
	TotalEarned    int64
	TotalWithdrawn int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type LedgerEntryDB struct {
	Seq           int64
	ID            string
	WalletID      string
	Type          string
	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64
	OrderID       *string
	WithdrawalID  *string
	Note          string
	CreatedAt     time.Time
}

func ToDomain(w *WalletDB) *entities.Wallet {
	if w == nil {
		return nil
	}

	return &entities.Wallet{
		ID:             w.ID,
		OwnerID:        w.OwnerID,
		Kind:           entities.WalletKind(w.Kind),
		Balance:        w.Balance,
		TotalEarned:    w.TotalEarned,
		TotalWithdrawn: w.TotalWithdrawn,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func LedgerToDomain(e *LedgerEntryDB) entities.LedgerEntry {
	return entities.LedgerEntry{
		ID:            e.ID,
		Seq:           e.Seq,
		WalletID:      e.WalletID,
		Type:          entities.LedgerEntryType(e.Type),
		Amount:        e.Amount,
		BalanceBefore: e.BalanceBefore,
		BalanceAfter:  e.BalanceAfter,
		OrderID:       e.OrderID,
		WithdrawalID:  e.WithdrawalID,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt,
	}
}
