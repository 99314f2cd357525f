package inmemory

import (
	"context"
	"fmt"
	"sort"

	"fulfillment/internal/entities"
)

type WithdrawalRepository struct {
	store *Store
}

func (s *Store) Withdrawals() *WithdrawalRepository {
	return &WithdrawalRepository{store: s}
}

func (r *WithdrawalRepository) Create(ctx context.Context, request entities.WithdrawalRequest) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.withdrawals[request.ID]; ok {
			return fmt.Errorf("inmemory: withdrawal %s already exists", request.ID)
		}
		if _, ok := st.wallets[request.WalletID]; !ok {
			return fmt.Errorf("inmemory: withdrawal %s references missing wallet %s", request.ID, request.WalletID)
		}
		st.withdrawals[request.ID] = request
		return nil
	})
}

func (r *WithdrawalRepository) GetByID(ctx context.Context, id string) (*entities.WithdrawalRequest, error) {
	var request entities.WithdrawalRequest
	err := r.store.read(ctx, func(st *state) error {
		w, ok := st.withdrawals[id]
		if !ok {
			return entities.ErrWithdrawalNotFound
		}
		request = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *WithdrawalRepository) Update(ctx context.Context, modify entities.WithdrawalModify) (*entities.WithdrawalRequest, error) {
	var updated entities.WithdrawalRequest
	err := r.store.write(ctx, func(st *state) error {
		w, ok := st.withdrawals[modify.ID]
		if !ok {
			return entities.ErrStaleWrite
		}
		if modify.ExpectedStatus != nil && w.Status != *modify.ExpectedStatus {
			return entities.ErrStaleWrite
		}

		if modify.Status != nil {
			w.Status = *modify.Status
		}
		if modify.RejectReason != nil {
			v := *modify.RejectReason
			w.RejectReason = &v
		}
		if modify.ProcessedAt != nil {
			v := *modify.ProcessedAt
			w.ProcessedAt = &v
		}

		st.withdrawals[w.ID] = w
		updated = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *WithdrawalRepository) ListPendingByWallet(ctx context.Context, walletID string) ([]entities.WithdrawalRequest, error) {
	requests := make([]entities.WithdrawalRequest, 0)
	err := r.store.read(ctx, func(st *state) error {
		for _, w := range st.withdrawals {
			if w.WalletID == walletID && w.Status == entities.WithdrawalPending {
				requests = append(requests, w)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(requests, func(i, j int) bool { return requests[i].CreatedAt.After(requests[j].CreatedAt) })
	return requests, nil
}
