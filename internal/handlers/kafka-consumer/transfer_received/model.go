package transfer_received

import (
	"errors"
	"time"

	"fulfillment/internal/entities"

	"github.com/shopspring/decimal"
)

var errFractionalAmount = errors.New("amount has a fractional part")

// transferEvent уведомление провайдера о поступлении, как оно лежит в топике.
// Сумма приходит десятичной строкой или числом.
type transferEvent struct {
	OrderRef string          `json:"order_ref"`
	Amount   decimal.Decimal `json:"amount"`
	TxnID    string          `json:"txn_id"`
	BankRef  string          `json:"bank_ref"`
	TxnDate  *time.Time      `json:"txn_date"`
}

func (e transferEvent) toDomain() (entities.TransferCallback, error) {
	if !e.Amount.Equal(e.Amount.Truncate(0)) {
		return entities.TransferCallback{}, errFractionalAmount
	}

	callback := entities.TransferCallback{
		OrderRef: e.OrderRef,
		Amount:   e.Amount.IntPart(),
		TxnID:    e.TxnID,
		BankRef:  e.BankRef,
	}
	if e.TxnDate != nil {
		callback.TxnDate = e.TxnDate.UTC()
	}
	return callback, nil
}
