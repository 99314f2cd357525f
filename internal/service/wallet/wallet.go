package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
)

const (
	defaultStatementLimit = 20
	maxStatementLimit     = 200
	bpsDenominator        = 10000
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Config struct {
	MinWithdrawal         int64
	PlatformCommissionBps int64
}

// Manager единственный, кто меняет балансы. Каждое изменение баланса идет в одной
// транзакции с проводкой, поэтому balance всегда равен сумме проводок.
type Manager struct {
	orders      OrderRepository
	payments    PaymentRepository
	wallets     WalletRepository
	withdrawals WithdrawalRepository
	outbox      Outbox
	intents     IntentFactory
	txManager   TxManager
	cfg         Config
	log         serviceLogger
}

func New(
	orders OrderRepository,
	payments PaymentRepository,
	wallets WalletRepository,
	withdrawals WithdrawalRepository,
	outbox Outbox,
	intents IntentFactory,
	txManager TxManager,
	cfg Config,
	log serviceLogger,
) *Manager {
	return &Manager{
		orders:      orders,
		payments:    payments,
		wallets:     wallets,
		withdrawals: withdrawals,
		outbox:      outbox,
		intents:     intents,
		txManager:   txManager,
		cfg:         cfg,
		log:         log,
	}
}

// ProcessOrderPayout зачисляет доли владельца и курьера за доставленный заказ.
// Флаг paid_out ставится в той же транзакции, что и зачисление, и является
// единственной защитой от двойной выплаты: повторный вызов ничего не пишет.
func (m *Manager) ProcessOrderPayout(
	ctx context.Context,
	orderID string,
	ownerAmount int64,
	shipperID string,
	shipperAmount int64,
) (*entities.PayoutResult, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if ownerAmount < 0 || shipperAmount < 0 {
		return nil, fmt.Errorf("%w: payout amounts must not be negative", ErrInvalidAmount)
	}
	if shipperAmount > 0 && !isValidID(shipperID) {
		return nil, ErrInvalidShipperID
	}

	result := entities.PayoutResult{}
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		result = entities.PayoutResult{}
		now := time.Now().UTC()

		order, err := m.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.PaidOut {
			result.AlreadyPaidOut = true
			return nil
		}
		if order.Status != entities.OrderDelivered || order.PaymentStatus != entities.OrderPaymentPaid {
			return fmt.Errorf("%w: status %s, payment status %s",
				ErrOrderNotPayable, order.Status, order.PaymentStatus)
		}
		if shipperAmount > 0 && !order.IsClaimedBy(shipperID) {
			return ErrShipperMismatch
		}
		if ownerAmount+shipperAmount > order.Total {
			return fmt.Errorf("%w: %d + %d > %d", ErrPayoutExceedsTotal, ownerAmount, shipperAmount, order.Total)
		}

		credits := make([]credit, 0, 2)
		if ownerAmount > 0 {
			credits = append(credits, credit{
				key:    entities.WalletKey{OwnerID: order.OwnerID, Kind: entities.WalletOwner},
				amount: ownerAmount,
			})
		}
		if shipperAmount > 0 {
			credits = append(credits, credit{
				key:    entities.WalletKey{OwnerID: shipperID, Kind: entities.WalletShipper},
				amount: shipperAmount,
			})
		}

		// фаза чтения: все кошельки до первой записи
		for i := range credits {
			credits[i].wallet, err = m.getOrCreateWallet(ctx, credits[i].key, now)
			if err != nil {
				return err
			}
		}

		entries := make([]entities.LedgerEntry, 0, len(credits))
		intents := make([]entities.NotificationIntent, 0, len(credits))
		for _, c := range credits {
			entry, err := c.wallet.Apply(entities.LedgerPayout, c.amount, now)
			if err != nil {
				return fmt.Errorf("credit wallet %s: %w", c.wallet.ID, err)
			}
			entry.ID = uuid.NewString()
			entry.OrderID = pointer.To(order.ID)
			entry.Note = "order payout"

			if err := m.wallets.Save(ctx, *c.wallet); err != nil {
				return fmt.Errorf("save wallet %s: %w", c.wallet.ID, err)
			}
			entries = append(entries, entry)
			intents = append(intents, m.intents.PayoutCredited(*c.wallet, entry)...)
		}

		if err := m.wallets.AppendLedgerEntries(ctx, entries); err != nil {
			return fmt.Errorf("append ledger entries: %w", err)
		}

		_, err = m.orders.Update(ctx, entities.OrderModify{
			ID:                    order.ID,
			PaidOut:               pointer.To(true),
			PaidOutAt:             pointer.To(now),
			ExpectedStatus:        pointer.To(entities.OrderDelivered),
			ExpectedPaymentStatus: pointer.To(entities.OrderPaymentPaid),
			RequireNotPaidOut:     true,
		})
		if err != nil {
			return fmt.Errorf("mark order paid out: %w", err)
		}

		if err := m.outbox.Add(ctx, intents...); err != nil {
			return fmt.Errorf("add notification intents: %w", err)
		}

		result.Entries = entries
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.AlreadyPaidOut {
		m.log.Info("order already paid out, skipping",
			logger.NewField("order_id", orderID),
		)
	}

	return &result, nil
}

type credit struct {
	key    entities.WalletKey
	amount int64
	wallet *entities.Wallet
}

// SettleOrder делит сумму заказа и выплачивает доли. Курьер получает стоимость доставки,
// с суммы блюд удерживается комиссия платформы, остаток получает владелец магазина.
func (m *Manager) SettleOrder(ctx context.Context, orderID string) (*entities.PayoutResult, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := m.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.PaidOut {
		return &entities.PayoutResult{AlreadyPaidOut: true}, nil
	}

	ownerAmount, shipperID, shipperAmount := m.split(*order)
	return m.ProcessOrderPayout(ctx, order.ID, ownerAmount, shipperID, shipperAmount)
}

func (m *Manager) split(order entities.Order) (ownerAmount int64, shipperID string, shipperAmount int64) {
	subtotal := order.Total - order.ShippingFee
	commission := subtotal * m.cfg.PlatformCommissionBps / bpsDenominator
	ownerAmount = subtotal - commission

	if order.IsClaimed() {
		shipperID = *order.ShipperID
		shipperAmount = order.ShippingFee
	}
	return ownerAmount, shipperID, shipperAmount
}

// SettlePending выплачивает доставленные оплаченные заказы, по которым выплата
// не прошла сразу после доставки. Ошибка по одному заказу не останавливает остальные.
func (m *Manager) SettlePending(ctx context.Context, limit int) (int, error) {
	orders, err := m.orders.ListUnsettled(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list unsettled orders: %w", err)
	}

	settled := 0
	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			return settled, err
		}

		result, err := m.SettleOrder(ctx, order.ID)
		if err != nil {
			m.log.Error("settle order failed",
				logger.NewField("order_id", order.ID),
				logger.NewField("error", err),
			)
			continue
		}
		if !result.AlreadyPaidOut {
			settled++
		}
	}

	return settled, nil
}

// InitiateRefund возвращает оплату заказа. Выплаты владельцу и курьеру, если они
// уже были, не отменяются: возврат и выплата независимы.
func (m *Manager) InitiateRefund(ctx context.Context, orderID, reason string) (*entities.Payment, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(reason) {
		return nil, ErrMissingReason
	}

	var refunded *entities.Payment
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		payment, err := m.payments.GetByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}
		order, err := m.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !payment.Status.CanTransitionTo(entities.PaymentRefunded) {
			return fmt.Errorf("%w: current status %s, expected %s",
				ErrPaymentNotRefundable, payment.Status, entities.PaymentPaid)
		}

		refunded, err = m.payments.Update(ctx, entities.PaymentModify{
			ID:             payment.ID,
			Status:         pointer.To(entities.PaymentRefunded),
			RefundedAt:     pointer.To(now),
			RefundReason:   pointer.To(reason),
			ExpectedStatus: pointer.To(entities.PaymentPaid),
		})
		if err != nil {
			return fmt.Errorf("mark payment refunded: %w", err)
		}

		order, err = m.orders.Update(ctx, entities.OrderModify{
			ID:                    order.ID,
			PaymentStatus:         pointer.To(entities.OrderPaymentRefunded),
			ExpectedPaymentStatus: pointer.To(entities.OrderPaymentPaid),
		})
		if err != nil {
			return fmt.Errorf("mark order refunded: %w", err)
		}

		if err := m.outbox.Add(ctx, m.intents.PaymentRefunded(*order, *refunded)...); err != nil {
			return fmt.Errorf("add notification intents: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return refunded, nil
}

// RequestPayout создает заявку на вывод. Баланс не меняется до перевода оператором,
// но заявки в ожидании уже резервируют свою сумму.
func (m *Manager) RequestPayout(
	ctx context.Context,
	key entities.WalletKey,
	amount int64,
	bankAccount string,
) (*entities.WithdrawalRequest, error) {
	if !key.Valid() {
		return nil, ErrInvalidWalletKey
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount < m.cfg.MinWithdrawal {
		return nil, fmt.Errorf("%w: %d < %d", ErrBelowMinimumWithdrawal, amount, m.cfg.MinWithdrawal)
	}
	if !isValidBankAccount(bankAccount) {
		return nil, ErrInvalidBankAccount
	}

	var request entities.WithdrawalRequest
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		wallet, err := m.wallets.GetByID(ctx, key.ID())
		if err != nil {
			if errors.Is(err, entities.ErrWalletNotFound) {
				return fmt.Errorf("%w: wallet is empty", entities.ErrInsufficientBalance)
			}
			return fmt.Errorf("get wallet: %w", err)
		}

		pending, err := m.withdrawals.ListPendingByWallet(ctx, wallet.ID)
		if err != nil {
			return fmt.Errorf("list pending withdrawals: %w", err)
		}

		available := wallet.Balance
		for _, p := range pending {
			available -= p.Amount
		}
		if amount > available {
			return fmt.Errorf("%w: requested %d, available %d", entities.ErrInsufficientBalance, amount, available)
		}

		request = entities.WithdrawalRequest{
			ID:          uuid.NewString(),
			WalletID:    wallet.ID,
			OwnerID:     wallet.OwnerID,
			Kind:        wallet.Kind,
			Amount:      amount,
			BankAccount: bankAccount,
			Status:      entities.WithdrawalPending,
			CreatedAt:   time.Now().UTC(),
		}
		if err := m.withdrawals.Create(ctx, request); err != nil {
			return fmt.Errorf("create withdrawal request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &request, nil
}

// ProcessPayoutTransfer списывает сумму заявки после перевода оператором.
// Баланс перепроверяется: с момента заявки он мог измениться.
func (m *Manager) ProcessPayoutTransfer(ctx context.Context, withdrawalID string) (*entities.WithdrawalRequest, error) {
	if !isValidID(withdrawalID) {
		return nil, ErrInvalidWithdrawalID
	}

	var transferred *entities.WithdrawalRequest
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		request, err := m.withdrawals.GetByID(ctx, withdrawalID)
		if err != nil {
			return fmt.Errorf("get withdrawal request: %w", err)
		}
		if request.Status != entities.WithdrawalPending {
			return fmt.Errorf("%w: current status %s, expected %s",
				ErrWithdrawalNotPending, request.Status, entities.WithdrawalPending)
		}

		wallet, err := m.wallets.GetByID(ctx, request.WalletID)
		if err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}

		entry, err := wallet.Apply(entities.LedgerWithdrawal, -request.Amount, now)
		if err != nil {
			return fmt.Errorf("debit wallet %s: %w", wallet.ID, err)
		}
		entry.ID = uuid.NewString()
		entry.WithdrawalID = pointer.To(request.ID)
		entry.Note = "withdrawal to " + request.BankAccount

		if err := m.wallets.Save(ctx, *wallet); err != nil {
			return fmt.Errorf("save wallet %s: %w", wallet.ID, err)
		}
		if err := m.wallets.AppendLedgerEntries(ctx, []entities.LedgerEntry{entry}); err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}

		transferred, err = m.withdrawals.Update(ctx, entities.WithdrawalModify{
			ID:             request.ID,
			Status:         pointer.To(entities.WithdrawalTransferred),
			ProcessedAt:    pointer.To(now),
			ExpectedStatus: pointer.To(entities.WithdrawalPending),
		})
		if err != nil {
			return fmt.Errorf("mark withdrawal transferred: %w", err)
		}

		if err := m.outbox.Add(ctx, m.intents.WithdrawalTransferred(*transferred)...); err != nil {
			return fmt.Errorf("add notification intents: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transferred, nil
}

func (m *Manager) RejectPayout(ctx context.Context, withdrawalID, reason string) (*entities.WithdrawalRequest, error) {
	if !isValidID(withdrawalID) {
		return nil, ErrInvalidWithdrawalID
	}
	if !isValidID(reason) {
		return nil, ErrMissingReason
	}

	var rejected *entities.WithdrawalRequest
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := m.withdrawals.GetByID(ctx, withdrawalID)
		if err != nil {
			return fmt.Errorf("get withdrawal request: %w", err)
		}
		if request.Status != entities.WithdrawalPending {
			return fmt.Errorf("%w: current status %s, expected %s",
				ErrWithdrawalNotPending, request.Status, entities.WithdrawalPending)
		}

		rejected, err = m.withdrawals.Update(ctx, entities.WithdrawalModify{
			ID:             request.ID,
			Status:         pointer.To(entities.WithdrawalRejected),
			RejectReason:   pointer.To(reason),
			ProcessedAt:    pointer.To(time.Now().UTC()),
			ExpectedStatus: pointer.To(entities.WithdrawalPending),
		})
		if err != nil {
			return fmt.Errorf("mark withdrawal rejected: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rejected, nil
}

// Adjust ручная проводка оператора. Отрицательная корректировка не может увести баланс в минус.
func (m *Manager) Adjust(ctx context.Context, key entities.WalletKey, amount int64, note string) (*entities.LedgerEntry, error) {
	if !key.Valid() {
		return nil, ErrInvalidWalletKey
	}
	if amount == 0 {
		return nil, ErrInvalidAmount
	}
	if !isValidID(note) {
		return nil, ErrMissingReason
	}

	var entry entities.LedgerEntry
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		wallet, err := m.getOrCreateWallet(ctx, key, now)
		if err != nil {
			return err
		}

		entry, err = wallet.Apply(entities.LedgerAdjustment, amount, now)
		if err != nil {
			return fmt.Errorf("adjust wallet %s: %w", wallet.ID, err)
		}
		entry.ID = uuid.NewString()
		entry.Note = note

		if err := m.wallets.Save(ctx, *wallet); err != nil {
			return fmt.Errorf("save wallet %s: %w", wallet.ID, err)
		}
		if err := m.wallets.AppendLedgerEntries(ctx, []entities.LedgerEntry{entry}); err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// GetWallet кошелек с последними проводками. Отсутствующий кошелек отдается нулевым:
// чтение никогда не создает кошелек.
func (m *Manager) GetWallet(ctx context.Context, key entities.WalletKey, limit int) (*entities.WalletStatement, error) {
	if !key.Valid() {
		return nil, ErrInvalidWalletKey
	}
	if limit <= 0 {
		limit = defaultStatementLimit
	}
	if limit > maxStatementLimit {
		limit = maxStatementLimit
	}

	wallet, err := m.wallets.GetByID(ctx, key.ID())
	if err != nil {
		if errors.Is(err, entities.ErrWalletNotFound) {
			return &entities.WalletStatement{
				Wallet:  *entities.NewWallet(key, time.Time{}),
				Entries: []entities.LedgerEntry{},
			}, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	entries, err := m.wallets.ListLedgerEntries(ctx, wallet.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	return &entities.WalletStatement{
		Wallet:  *wallet,
		Entries: entries,
	}, nil
}

// getOrCreateWallet читает кошелек по ключу или возвращает новый нулевой.
// Новый кошелек сохраняется только вместе с первой проводкой в той же транзакции.
func (m *Manager) getOrCreateWallet(ctx context.Context, key entities.WalletKey, now time.Time) (*entities.Wallet, error) {
	wallet, err := m.wallets.GetByID(ctx, key.ID())
	if err == nil {
		return wallet, nil
	}
	if errors.Is(err, entities.ErrWalletNotFound) {
		return entities.NewWallet(key, now), nil
	}
	return nil, fmt.Errorf("get wallet %s: %w", key.ID(), err)
}
