package inmemory

import (
	"context"
	"fmt"
	"sort"

	"fulfillment/internal/entities"
)

type WalletRepository struct {
	store *Store
}

func (s *Store) Wallets() *WalletRepository {
	return &WalletRepository{store: s}
}

func (r *WalletRepository) GetByID(ctx context.Context, id string) (*entities.Wallet, error) {
	var wallet entities.Wallet
	err := r.store.read(ctx, func(st *state) error {
		w, ok := st.wallets[id]
		if !ok {
			return entities.ErrWalletNotFound
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Save вставляет или перезаписывает кошелек, проверяя те же ограничения, что и таблица.
func (r *WalletRepository) Save(ctx context.Context, wallet entities.Wallet) error {
	if !wallet.Consistent() {
		return fmt.Errorf("inmemory: wallet %s violates balance constraints", wallet.ID)
	}

	return r.store.write(ctx, func(st *state) error {
		if existing, ok := st.wallets[wallet.ID]; ok {
			wallet.CreatedAt = existing.CreatedAt
		}
		st.wallets[wallet.ID] = wallet
		return nil
	})
}

func (r *WalletRepository) AppendLedgerEntries(ctx context.Context, entries []entities.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.store.write(ctx, func(st *state) error {
		for _, e := range entries {
			if e.BalanceAfter != e.BalanceBefore+e.Amount || e.Amount == 0 {
				return fmt.Errorf("inmemory: ledger entry %s violates before/after constraint", e.ID)
			}
			if _, ok := st.wallets[e.WalletID]; !ok {
				return fmt.Errorf("inmemory: ledger entry %s references missing wallet %s", e.ID, e.WalletID)
			}
			for _, existing := range st.ledger {
				if existing.ID == e.ID {
					return fmt.Errorf("inmemory: ledger entry %s already exists", e.ID)
				}
				if e.Type == entities.LedgerPayout && existing.Type == entities.LedgerPayout &&
					existing.WalletID == e.WalletID && e.OrderID != nil && existing.OrderID != nil &&
					*existing.OrderID == *e.OrderID {
					return fmt.Errorf("inmemory: payout for order %s already recorded", *e.OrderID)
				}
			}

			st.ledgerSeq++
			e.Seq = st.ledgerSeq
			st.ledger = append(st.ledger, e)
		}
		return nil
	})
}

// ListLedgerEntries при limit > 0 последние limit проводок, новые первыми,
// иначе все проводки в порядке создания.
func (r *WalletRepository) ListLedgerEntries(ctx context.Context, walletID string, limit int) ([]entities.LedgerEntry, error) {
	entries := make([]entities.LedgerEntry, 0)
	err := r.store.read(ctx, func(st *state) error {
		for _, e := range st.ledger {
			if e.WalletID == walletID {
				entries = append(entries, e)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Seq < entries[j].Seq })
		return entries, nil
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Seq > entries[j].Seq })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
