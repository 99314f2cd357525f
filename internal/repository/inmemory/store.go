// Package inmemory хранилище в памяти с оптимистичными сериализуемыми транзакциями.
// Используется в тестах конкурентных сценариев вместо Postgres: тела транзакций
// выполняются параллельно на своих снимках, а при коммите проигравший повторяет тело заново.
package inmemory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"fulfillment/internal/entities"
)

const defaultMaxAttempts = 100

// ErrTooManyConflicts транзакция так и не смогла закоммититься.
var ErrTooManyConflicts = errors.New("inmemory: transaction aborted after too many conflicts")

type txKey struct{}

type txState struct {
	store *Store
	data  *state
}

type state struct {
	orders      map[string]entities.Order
	payments    map[string]entities.Payment
	wallets     map[string]entities.Wallet
	ledger      []entities.LedgerEntry
	withdrawals map[string]entities.WithdrawalRequest
	shippers    map[string]entities.Shipper
	outbox      []entities.NotificationIntent
	ledgerSeq   int64
}

func newState() *state {
	return &state{
		orders:      make(map[string]entities.Order),
		payments:    make(map[string]entities.Payment),
		wallets:     make(map[string]entities.Wallet),
		withdrawals: make(map[string]entities.WithdrawalRequest),
		shippers:    make(map[string]entities.Shipper),
	}
}

// clone копирует контейнеры. Сами сущности хранятся значениями, а указатели внутри
// них никогда не меняются на месте, поэтому разделять их между снимками безопасно.
func (s *state) clone() *state {
	c := &state{
		orders:      make(map[string]entities.Order, len(s.orders)),
		payments:    make(map[string]entities.Payment, len(s.payments)),
		wallets:     make(map[string]entities.Wallet, len(s.wallets)),
		ledger:      append([]entities.LedgerEntry(nil), s.ledger...),
		withdrawals: make(map[string]entities.WithdrawalRequest, len(s.withdrawals)),
		shippers:    make(map[string]entities.Shipper, len(s.shippers)),
		outbox:      append([]entities.NotificationIntent(nil), s.outbox...),
		ledgerSeq:   s.ledgerSeq,
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.wallets {
		c.wallets[k] = v
	}
	for k, v := range s.withdrawals {
		c.withdrawals[k] = v
	}
	for k, v := range s.shippers {
		c.shippers[k] = v
	}
	return c
}

// Store общий для всех репозиториев пакета.
type Store struct {
	mu          sync.Mutex
	committed   *state
	version     uint64
	maxAttempts int

	commits   atomic.Int64
	conflicts atomic.Int64

	// beforeCommit вызывается после тела транзакции, до проверки версии. Тесты используют
	// его, чтобы гарантированно столкнуть две транзакции.
	beforeCommit func()
}

func New() *Store {
	return &Store{
		committed:   newState(),
		maxAttempts: defaultMaxAttempts,
	}
}

// SetBeforeCommit устанавливает хук, вызываемый перед коммитом каждой транзакции.
func (s *Store) SetBeforeCommit(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeCommit = fn
}

// Do выполняет fn в транзакции. Вложенный вызов присоединяется к внешней.
// При конфликте с параллельным коммитом тело выполняется заново на свежем снимке.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*txState); ok && tx.store == s {
		return fn(ctx)
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.mu.Lock()
		snapshot := s.committed.clone()
		version := s.version
		hook := s.beforeCommit
		s.mu.Unlock()

		if err := fn(context.WithValue(ctx, txKey{}, &txState{store: s, data: snapshot})); err != nil {
			return err
		}

		if hook != nil {
			hook()
		}

		s.mu.Lock()
		if s.version != version {
			s.mu.Unlock()
			s.conflicts.Add(1)
			continue
		}
		s.committed = snapshot
		s.version++
		s.mu.Unlock()
		s.commits.Add(1)

		return nil
	}

	return ErrTooManyConflicts
}

// Rendezvous хук для SetBeforeCommit: первые n транзакций ждут друг друга перед коммитом,
// поэтому гарантированно читают один и тот же снимок. Остальные проходят без ожидания.
func Rendezvous(n int) func() {
	var (
		calls   atomic.Int64
		barrier sync.WaitGroup
	)
	barrier.Add(n)

	return func() {
		if calls.Add(1) > int64(n) {
			return
		}
		barrier.Done()
		barrier.Wait()
	}
}

// Commits число успешных транзакций.
func (s *Store) Commits() int64 {
	return s.commits.Load()
}

// Conflicts число повторов из-за конфликтов.
func (s *Store) Conflicts() int64 {
	return s.conflicts.Load()
}

// read выполняет fn на снимке транзакции или на закоммиченном состоянии.
func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if tx, ok := ctx.Value(txKey{}).(*txState); ok && tx.store == s {
		return fn(tx.data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.committed)
}

// write вне транзакции открывает собственную, как одиночный запрос в Postgres.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	return s.Do(ctx, func(ctx context.Context) error {
		tx, _ := ctx.Value(txKey{}).(*txState)
		return fn(tx.data)
	})
}

// Intents копия всех записанных намерений в порядке создания.
func (s *Store) Intents() []entities.NotificationIntent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.NotificationIntent(nil), s.committed.outbox...)
}

// LedgerOf копия проводок кошелька в порядке создания.
func (s *Store) LedgerOf(walletID string) []entities.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]entities.LedgerEntry, 0)
	for _, e := range s.committed.ledger {
		if e.WalletID == walletID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Seq < entries[j].Seq })
	return entries
}

// AllWallets копия всех кошельков.
func (s *Store) AllWallets() []entities.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets := make([]entities.Wallet, 0, len(s.committed.wallets))
	for _, w := range s.committed.wallets {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })
	return wallets
}
