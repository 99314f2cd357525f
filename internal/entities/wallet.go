package entities

import (
	"strings"
	"time"
)

type WalletKind string

const (
	WalletOwner   WalletKind = "OWNER"
	WalletShipper WalletKind = "SHIPPER"
)

func (k WalletKind) String() string {
	return string(k)
}

func (k WalletKind) Valid() bool {
	switch k {
	case WalletOwner, WalletShipper:
		return true
	}
	return false
}

// WalletKey адрес кошелька. ID выводится из ключа детерминированно, поэтому выплата
// может создать кошелек "если нет" в той же транзакции без отдельного поиска.
type WalletKey struct {
	OwnerID string
	Kind    WalletKind
}

func (k WalletKey) ID() string {
	return strings.ToLower(k.Kind.String()) + ":" + k.OwnerID
}

func (k WalletKey) Valid() bool {
	return k.OwnerID != "" && k.Kind.Valid()
}

type Wallet struct {
	ID             string
	OwnerID        string
	Kind           WalletKind
	Balance        int64
	TotalEarned    int64
	TotalWithdrawn int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewWallet нулевой кошелек для ключа. Сохраняется только вместе с первой проводкой.
func NewWallet(key WalletKey, now time.Time) *Wallet {
	return &Wallet{
		ID:        key.ID(),
		OwnerID:   key.OwnerID,
		Kind:      key.Kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (w *Wallet) Key() WalletKey {
	return WalletKey{OwnerID: w.OwnerID, Kind: w.Kind}
}

// Consistent balance = totalEarned - totalWithdrawn и баланс не отрицательный.
func (w *Wallet) Consistent() bool {
	return w.Balance == w.TotalEarned-w.TotalWithdrawn && w.Balance >= 0
}

// Apply изменяет кошелек и возвращает проводку с балансом до и после.
// PAYOUT строго положительный, WITHDRAWAL строго отрицательный,
// ADJUSTMENT любого знака кроме нуля. Баланс не уходит в минус.
func (w *Wallet) Apply(entryType LedgerEntryType, amount int64, now time.Time) (LedgerEntry, error) {
	before := w.Balance

	switch entryType {
	case LedgerPayout:
		if amount <= 0 {
			return LedgerEntry{}, ErrInvalidLedgerAmount
		}
		w.TotalEarned += amount
	case LedgerWithdrawal:
		if amount >= 0 {
			return LedgerEntry{}, ErrInvalidLedgerAmount
		}
		if before+amount < 0 {
			return LedgerEntry{}, ErrInsufficientBalance
		}
		w.TotalWithdrawn -= amount
	case LedgerAdjustment:
		if amount == 0 {
			return LedgerEntry{}, ErrInvalidLedgerAmount
		}
		if before+amount < 0 {
			return LedgerEntry{}, ErrInsufficientBalance
		}
		w.TotalEarned += amount
	default:
		return LedgerEntry{}, ErrInvalidLedgerType
	}

	w.Balance = before + amount
	w.UpdatedAt = now

	return LedgerEntry{
		WalletID:      w.ID,
		Type:          entryType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  w.Balance,
		CreatedAt:     now,
	}, nil
}

// HolderRole роль пользователя, которому принадлежит кошелек этого вида.
func (k WalletKind) HolderRole() Role {
	switch k {
	case WalletOwner:
		return RoleOwner
	case WalletShipper:
		return RoleShipper
	}
	return ""
}
