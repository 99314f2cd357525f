package entities

import "time"

// LedgerEntry неизменяемая проводка по кошельку. Seq задает порядок создания.
type LedgerEntry struct {
	ID            string
	Seq           int64
	WalletID      string
	Type          LedgerEntryType
	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64
	OrderID       *string
	WithdrawalID  *string
	Note          string
	CreatedAt     time.Time
}

type LedgerEntryType string

const (
	LedgerPayout     LedgerEntryType = "PAYOUT"
	LedgerWithdrawal LedgerEntryType = "WITHDRAWAL"
	LedgerAdjustment LedgerEntryType = "ADJUSTMENT"
)

func (t LedgerEntryType) String() string {
	return string(t)
}

// ReplayLedger сумма проводок по порядку с нуля. Для согласованного кошелька
// совпадает с его балансом.
func ReplayLedger(entries []LedgerEntry) (int64, bool) {
	var balance int64
	for _, e := range entries {
		if e.BalanceAfter != e.BalanceBefore+e.Amount {
			return balance, false
		}
		balance += e.Amount
	}
	return balance, true
}

// PayoutResult результат выплаты по заказу. AlreadyPaidOut - повторный вызов, ничего не записано.
type PayoutResult struct {
	AlreadyPaidOut bool
	Entries        []LedgerEntry
}

// WalletStatement кошелек с последними проводками.
type WalletStatement struct {
	Wallet  Wallet
	Entries []LedgerEntry
}
