package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/apperr"
	"fulfillment/pkg/logger"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
)

type AmountPolicy string

const (
	// AmountPolicyTolerate расхождение суммы в callback логируется, платеж подтверждается.
	AmountPolicyTolerate AmountPolicy = "tolerate"
	// AmountPolicyReject расхождение суммы отклоняет callback, платеж остается в обработке.
	AmountPolicyReject AmountPolicy = "reject"
)

// RefundReasonOrderCancelled причина автоматического возврата, если перевод
// подтвердился уже после отмены заказа.
const RefundReasonOrderCancelled = "order cancelled before transfer was confirmed"

type Config struct {
	AccountNumber string
	BankCode      string
	QRBaseURL     string
	AmountPolicy  AmountPolicy
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Reconciler создает платежи и сверяет подтверждения провайдера с ожидающими платежами.
// Оба пути подтверждения (опрос и callback) можно вызывать сколько угодно раз
// параллельно: переход в PAID случается ровно один раз.
type Reconciler struct {
	orders    OrderRepository
	payments  PaymentRepository
	provider  TransferProvider
	outbox    Outbox
	intents   IntentFactory
	txManager TxManager
	cfg       Config
	log       serviceLogger
}

func New(
	orders OrderRepository,
	payments PaymentRepository,
	provider TransferProvider,
	outbox Outbox,
	intents IntentFactory,
	txManager TxManager,
	cfg Config,
	log serviceLogger,
) *Reconciler {
	if cfg.AmountPolicy == "" {
		cfg.AmountPolicy = AmountPolicyTolerate
	}

	return &Reconciler{
		orders:    orders,
		payments:  payments,
		provider:  provider,
		outbox:    outbox,
		intents:   intents,
		txManager: txManager,
		cfg:       cfg,
		log:       log,
	}
}

// CreatePayment начинает оплату заказа. Наличные подтверждаются сразу,
// перевод по QR ждет подтверждения провайдера.
func (r *Reconciler) CreatePayment(
	ctx context.Context,
	caller entities.Caller,
	orderID string,
	method entities.PaymentMethod,
) (*entities.Payment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}

	var payment entities.Payment
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		order, err := r.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.CustomerID != caller.ID {
			return ErrOrderAccessDenied
		}

		existing, err := r.payments.GetByOrderID(ctx, orderID)
		if err == nil {
			return fmt.Errorf("%w: payment %s is %s", entities.ErrPaymentAlreadyExists, existing.ID, existing.Status)
		}
		if !errors.Is(err, entities.ErrPaymentNotFound) {
			return fmt.Errorf("get payment: %w", err)
		}

		if method != order.PaymentMethod {
			return fmt.Errorf("%w: order expects %s, got %s", ErrPaymentMethodMismatch, order.PaymentMethod, method)
		}
		if order.Status == entities.OrderCancelled {
			return ErrOrderCancelled
		}

		payment = entities.Payment{
			ID:             uuid.NewString(),
			OrderID:        order.ID,
			Method:         method,
			Amount:         order.Total,
			CorrelationTag: CorrelationTag(order.ID),
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		orderPaymentStatus := entities.OrderPaymentProcessing
		switch method {
		case entities.PaymentMethodCOD:
			payment.Status = entities.PaymentPaid
			payment.PaidAt = pointer.To(now)
			orderPaymentStatus = entities.OrderPaymentPaid
		case entities.PaymentMethodTransferQR:
			payment.Status = entities.PaymentProcessing
			payment.RequestArtifact = qrImageURL(r.cfg, payment.Amount, payment.CorrelationTag)
		}

		if err := r.payments.Create(ctx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		updated, err := r.orders.Update(ctx, entities.OrderModify{
			ID:                    order.ID,
			PaymentStatus:         pointer.To(orderPaymentStatus),
			ExpectedPaymentStatus: pointer.To(entities.OrderPaymentUnpaid),
		})
		if err != nil {
			return fmt.Errorf("set order payment status: %w", err)
		}

		if payment.Status == entities.PaymentPaid {
			if err := r.outbox.Add(ctx, r.intents.PaymentPaid(*updated, payment)...); err != nil {
				return fmt.Errorf("add notification intents: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// GetPayment платеж заказа для покупателя, владельца магазина или оператора.
func (r *Reconciler) GetPayment(ctx context.Context, caller entities.Caller, orderID string) (*entities.Payment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := r.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !canSeePayment(caller, order) {
		return nil, ErrOrderAccessDenied
	}

	payment, err := r.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

// Reconcile сверка по запросу клиента. Провайдер опрашивается строго до транзакции;
// его недоступность означает "пока не найдено", а не ошибку заказа.
func (r *Reconciler) Reconcile(ctx context.Context, caller entities.Caller, orderID string) (*entities.ReconcileResult, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := r.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !canSeePayment(caller, order) {
		return nil, ErrOrderAccessDenied
	}

	payment, err := r.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	switch payment.Status {
	case entities.PaymentPaid:
		r.log.Info("payment already paid, skipping provider lookup",
			logger.NewField("order_id", orderID),
		)
		return &entities.ReconcileResult{Matched: true, AlreadyPaid: true, Payment: payment}, nil
	case entities.PaymentRefunded:
		return nil, fmt.Errorf("%w: current status %s", ErrPaymentNotPending, payment.Status)
	case entities.PaymentProcessing:
	}

	transfers, err := r.provider.ListRecentTransfers(ctx, payment.Amount)
	if err != nil {
		fields := []logger.Field{
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		}
		if apperr.IsExternalUnavailable(err) {
			r.log.Warn("transfer provider unavailable, reconciliation inconclusive", fields...)
		} else {
			r.log.Error("transfer provider lookup failed, reconciliation inconclusive", fields...)
		}
		return &entities.ReconcileResult{Inconclusive: true, Payment: payment}, nil
	}

	transfer, ok := matchTransfer(transfers, payment.Amount, payment.CorrelationTag)
	if !ok {
		return &entities.ReconcileResult{Payment: payment}, nil
	}

	paid, alreadyPaid, err := r.markPaid(ctx, payment.OrderID, transfer.TxnID, transfer.BankRef, transfer.ReceivedAt)
	if err != nil {
		return nil, err
	}

	return &entities.ReconcileResult{Matched: true, AlreadyPaid: alreadyPaid, Payment: paid}, nil
}

// ConfirmFromCallback подтверждение от провайдера. Доставка at-least-once:
// дубль или callback после успешного опроса завершается успехом без записей.
func (r *Reconciler) ConfirmFromCallback(ctx context.Context, callback entities.TransferCallback) (*entities.ReconcileResult, error) {
	if strings.TrimSpace(callback.OrderRef) == "" || strings.TrimSpace(callback.TxnID) == "" || callback.Amount <= 0 {
		return nil, ErrInvalidCallback
	}

	payment, err := r.resolvePayment(ctx, callback.OrderRef)
	if err != nil {
		return nil, err
	}

	// возвращенный после поздней оплаты платеж: повтор того же перевода тоже дубль
	if payment.Status == entities.PaymentPaid || isSameRefundedTransfer(*payment, callback.TxnID) {
		r.log.Info("duplicate transfer callback for paid payment",
			logger.NewField("order_id", payment.OrderID),
			logger.NewField("txn_id", callback.TxnID),
		)
		return &entities.ReconcileResult{Matched: true, AlreadyPaid: true, Payment: payment}, nil
	}
	if payment.Status != entities.PaymentProcessing {
		return nil, fmt.Errorf("%w: current status %s", ErrPaymentNotPending, payment.Status)
	}

	if callback.Amount != payment.Amount {
		fields := []logger.Field{
			logger.NewField("order_id", payment.OrderID),
			logger.NewField("txn_id", callback.TxnID),
			logger.NewField("expected_amount", payment.Amount),
			logger.NewField("received_amount", callback.Amount),
			logger.NewField("policy", string(r.cfg.AmountPolicy)),
		}
		if r.cfg.AmountPolicy == AmountPolicyReject {
			r.log.Warn("transfer callback amount mismatch, rejecting", fields...)
			return nil, fmt.Errorf("%w: expected %d, received %d",
				ErrCallbackAmountMismatch, payment.Amount, callback.Amount)
		}
		r.log.Warn("transfer callback amount mismatch, confirming anyway", fields...)
	}

	paidAt := callback.TxnDate
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	paid, alreadyPaid, err := r.markPaid(ctx, payment.OrderID, callback.TxnID, callback.BankRef, paidAt)
	if err != nil {
		return nil, err
	}

	return &entities.ReconcileResult{Matched: true, AlreadyPaid: alreadyPaid, Payment: paid}, nil
}

// resolvePayment orderRef это ID заказа или метка из назначения перевода.
func (r *Reconciler) resolvePayment(ctx context.Context, orderRef string) (*entities.Payment, error) {
	payment, err := r.payments.GetByOrderID(ctx, orderRef)
	if err == nil {
		return payment, nil
	}
	if !errors.Is(err, entities.ErrPaymentNotFound) {
		return nil, fmt.Errorf("get payment by order id: %w", err)
	}

	payment, err = r.payments.GetByCorrelationTag(ctx, strings.ToUpper(strings.TrimSpace(orderRef)))
	if err != nil {
		return nil, fmt.Errorf("get payment by correlation tag %q: %w", orderRef, err)
	}
	return payment, nil
}

// markPaid переводит платеж и заказ в PAID одной транзакцией. Если параллельный вызов
// успел раньше, транзакция видит PAID и ничего не пишет.
func (r *Reconciler) markPaid(
	ctx context.Context,
	orderID, txnID, bankRef string,
	paidAt time.Time,
) (*entities.Payment, bool, error) {
	var (
		paid        *entities.Payment
		alreadyPaid bool
	)

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		paid, alreadyPaid = nil, false

		payment, err := r.payments.GetByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}
		if payment.Status == entities.PaymentPaid {
			paid, alreadyPaid = payment, true
			return nil
		}
		if !payment.Status.CanTransitionTo(entities.PaymentPaid) {
			return fmt.Errorf("%w: current status %s", ErrPaymentNotPending, payment.Status)
		}

		order, err := r.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		paid, err = r.payments.Update(ctx, entities.PaymentModify{
			ID:             payment.ID,
			Status:         pointer.To(entities.PaymentPaid),
			ProviderTxnID:  pointer.To(txnID),
			BankRef:        optional(bankRef),
			PaidAt:         pointer.To(paidAt.UTC()),
			ExpectedStatus: pointer.To(entities.PaymentProcessing),
		})
		if err != nil {
			return fmt.Errorf("mark payment paid: %w", err)
		}

		updated, err := r.orders.Update(ctx, entities.OrderModify{
			ID:                    order.ID,
			PaymentStatus:         pointer.To(entities.OrderPaymentPaid),
			ExpectedPaymentStatus: pointer.To(entities.OrderPaymentProcessing),
		})
		if err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}

		if updated.Status == entities.OrderCancelled {
			paid, err = r.refundCancelled(ctx, *updated, *paid)
			return err
		}

		if err := r.outbox.Add(ctx, r.intents.PaymentPaid(*updated, *paid)...); err != nil {
			return fmt.Errorf("add notification intents: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if alreadyPaid {
		r.log.Info("payment confirmed concurrently, no changes",
			logger.NewField("order_id", orderID),
			logger.NewField("txn_id", txnID),
		)
	}
	return paid, alreadyPaid, nil
}

// refundCancelled деньги пришли после отмены заказа: платеж сразу уходит в возврат
// в той же транзакции, что и подтверждение.
func (r *Reconciler) refundCancelled(
	ctx context.Context,
	order entities.Order,
	paid entities.Payment,
) (*entities.Payment, error) {
	refunded, err := r.payments.Update(ctx, entities.PaymentModify{
		ID:             paid.ID,
		Status:         pointer.To(entities.PaymentRefunded),
		RefundedAt:     pointer.To(time.Now().UTC()),
		RefundReason:   pointer.To(RefundReasonOrderCancelled),
		ExpectedStatus: pointer.To(entities.PaymentPaid),
	})
	if err != nil {
		return nil, fmt.Errorf("refund payment of cancelled order: %w", err)
	}

	updated, err := r.orders.Update(ctx, entities.OrderModify{
		ID:                    order.ID,
		PaymentStatus:         pointer.To(entities.OrderPaymentRefunded),
		ExpectedPaymentStatus: pointer.To(entities.OrderPaymentPaid),
	})
	if err != nil {
		return nil, fmt.Errorf("mark cancelled order refunded: %w", err)
	}

	if err := r.outbox.Add(ctx, r.intents.PaymentRefunded(*updated, *refunded)...); err != nil {
		return nil, fmt.Errorf("add notification intents: %w", err)
	}

	r.log.Warn("payment confirmed for cancelled order, refunded",
		logger.NewField("order_id", order.ID),
		logger.NewField("payment_id", refunded.ID),
	)
	return refunded, nil
}

func canSeePayment(caller entities.Caller, order *entities.Order) bool {
	switch caller.Role {
	case entities.RoleOperator:
		return true
	case entities.RoleCustomer:
		return order.CustomerID == caller.ID
	case entities.RoleOwner:
		return order.OwnerID == caller.ID
	case entities.RoleShipper:
		return false
	}
	return false
}

func isSameRefundedTransfer(payment entities.Payment, txnID string) bool {
	return payment.Status == entities.PaymentRefunded &&
		payment.ProviderTxnID != nil &&
		*payment.ProviderTxnID == txnID
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
