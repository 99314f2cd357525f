// Package convert переводит доменные сущности в сгенерированные DTO REST API
// и обратно.
package convert

import (
	"errors"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
)

var ErrFractionalAmount = errors.New("amount has a fractional part")

func FromOrder(o entities.Order) dto.Order {
	return dto.Order{
		ID:                  o.ID,
		ShopID:              o.ShopID,
		OwnerID:             o.OwnerID,
		CustomerID:          o.CustomerID,
		ShipperID:           o.ShipperID,
		Status:              o.Status.String(),
		PaymentStatus:       o.PaymentStatus.String(),
		PaymentMethod:       o.PaymentMethod.String(),
		Total:               o.Total,
		ShippingFee:         o.ShippingFee,
		PaidOut:             o.PaidOut,
		CancelReason:        o.CancelReason,
		EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		CreatedAt:           o.CreatedAt,
		DeliveredAt:         o.DeliveredAt,
		CancelledAt:         o.CancelledAt,
	}
}

func FromOrders(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, FromOrder(o))
	}
	return res
}

func FromPayment(p entities.Payment) dto.Payment {
	return dto.Payment{
		ID:              p.ID,
		OrderID:         p.OrderID,
		Method:          p.Method.String(),
		Status:          p.Status.String(),
		Amount:          p.Amount,
		CorrelationTag:  p.CorrelationTag,
		RequestArtifact: optional(p.RequestArtifact),
		ProviderTxnID:   p.ProviderTxnID,
		PaidAt:          p.PaidAt,
		RefundedAt:      p.RefundedAt,
		RefundReason:    p.RefundReason,
	}
}

func FromReconcileResult(r entities.ReconcileResult) dto.ReconcileResult {
	res := dto.ReconcileResult{
		Matched:      r.Matched,
		AlreadyPaid:  r.AlreadyPaid,
		Inconclusive: r.Inconclusive,
	}
	if r.Payment != nil {
		p := FromPayment(*r.Payment)
		res.Payment = &p
	}
	return res
}

func FromStatement(s entities.WalletStatement) dto.Wallet {
	entries := make([]dto.LedgerEntry, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, FromLedgerEntry(e))
	}
	return dto.Wallet{
		ID:             s.Wallet.ID,
		OwnerID:        s.Wallet.OwnerID,
		Kind:           s.Wallet.Kind.String(),
		Balance:        s.Wallet.Balance,
		TotalEarned:    s.Wallet.TotalEarned,
		TotalWithdrawn: s.Wallet.TotalWithdrawn,
		Entries:        entries,
	}
}

func FromLedgerEntry(e entities.LedgerEntry) dto.LedgerEntry {
	return dto.LedgerEntry{
		ID:            e.ID,
		Seq:           e.Seq,
		Type:          e.Type.String(),
		Amount:        e.Amount,
		BalanceBefore: e.BalanceBefore,
		BalanceAfter:  e.BalanceAfter,
		OrderID:       e.OrderID,
		WithdrawalID:  e.WithdrawalID,
		Note:          optional(e.Note),
		CreatedAt:     e.CreatedAt,
	}
}

func FromWithdrawal(w entities.WithdrawalRequest) dto.Withdrawal {
	return dto.Withdrawal{
		ID:           w.ID,
		WalletID:     w.WalletID,
		Amount:       w.Amount,
		BankAccount:  w.BankAccount,
		Status:       w.Status.String(),
		RejectReason: w.RejectReason,
		CreatedAt:    w.CreatedAt,
		ProcessedAt:  w.ProcessedAt,
	}
}

func FromShipper(s entities.Shipper) dto.Shipper {
	return dto.Shipper{
		ID:            s.ID,
		Name:          s.Name,
		Phone:         s.Phone,
		Status:        s.Status.String(),
		TransportType: s.TransportType.String(),
	}
}

func FromRoute(r entities.Route) dto.Route {
	return dto.Route{
		Order:           r.Order,
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: r.DurationSeconds,
	}
}

func ToWaypoint(w dto.Waypoint) entities.Waypoint {
	return entities.Waypoint{ID: w.ID, Lat: w.Lat, Lng: w.Lng}
}

func ToWaypoints(ws []dto.Waypoint) []entities.Waypoint {
	res := make([]entities.Waypoint, 0, len(ws))
	for _, w := range ws {
		res = append(res, ToWaypoint(w))
	}
	return res
}

// ToTransferCallback сумма в минорных единицах, дробь не округляется.
func ToTransferCallback(c dto.TransferCallback) (entities.TransferCallback, error) {
	if !c.Amount.Equal(c.Amount.Truncate(0)) {
		return entities.TransferCallback{}, ErrFractionalAmount
	}

	callback := entities.TransferCallback{
		OrderRef: c.OrderRef,
		Amount:   c.Amount.IntPart(),
		TxnID:    c.TxnID,
	}
	if c.BankRef != nil {
		callback.BankRef = *c.BankRef
	}
	if c.TxnDate != nil {
		callback.TxnDate = c.TxnDate.UTC()
	}
	return callback, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
