package transfer

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"

	"github.com/shopspring/decimal"
)

// Время в выписке провайдера локальное, без зоны.
const transactionDateLayout = "2006-01-02 15:04:05"

type listResponse struct {
	Status       int              `json:"status"`
	Error        *string          `json:"error"`
	Transactions []transactionDTO `json:"transactions"`
}

type transactionDTO struct {
	ID              string `json:"id"`
	TransactionDate string `json:"transaction_date"`
	AccountNumber   string `json:"account_number"`
	AmountIn        string `json:"amount_in"`
	Content         string `json:"transaction_content"`
	ReferenceNumber string `json:"reference_number"`
}

func toDomain(dto transactionDTO, location *time.Location) (entities.Transfer, error) {
	amount, err := parseAmount(dto.AmountIn)
	if err != nil {
		return entities.Transfer{}, fmt.Errorf("transaction %s: %w", dto.ID, err)
	}
	if strings.TrimSpace(dto.ID) == "" {
		return entities.Transfer{}, fmt.Errorf("transaction without id")
	}

	var receivedAt time.Time
	if dto.TransactionDate != "" {
		receivedAt, err = time.ParseInLocation(transactionDateLayout, dto.TransactionDate, location)
		if err != nil {
			return entities.Transfer{}, fmt.Errorf("transaction %s: parse date: %w", dto.ID, err)
		}
		receivedAt = receivedAt.UTC()
	}

	return entities.Transfer{
		TxnID:      dto.ID,
		BankRef:    dto.ReferenceNumber,
		Amount:     amount,
		Memo:       dto.Content,
		ReceivedAt: receivedAt,
	}, nil
}

// parseAmount переводит десятичную строку в целые единицы валюты. Дробная часть
// допустима только нулевая.
func parseAmount(raw string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has a fractional part", raw)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("amount %q is not positive", raw)
	}
	return d.IntPart(), nil
}
