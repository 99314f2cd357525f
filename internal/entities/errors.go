package entities

import "fulfillment/internal/pkg/apperr"

var (
	ErrOrderNotFound      = apperr.NotFound("order not found")
	ErrPaymentNotFound    = apperr.NotFound("payment not found")
	ErrWalletNotFound     = apperr.NotFound("wallet not found")
	ErrWithdrawalNotFound = apperr.NotFound("withdrawal request not found")
	ErrShipperNotFound    = apperr.NotFound("shipper not found")
)

var (
	// ErrStaleWrite условное обновление не нашло строку в ожидаемом состоянии.
	ErrStaleWrite = apperr.Conflict("record was modified concurrently")

	ErrPaymentAlreadyExists = apperr.Conflict("payment already exists for order")
	ErrTransferAlreadyUsed  = apperr.Conflict("transfer already applied to another payment")
	ErrShipperAlreadyExists = apperr.Conflict("shipper already exists")
	ErrInsufficientBalance  = apperr.Conflict("insufficient wallet balance")
)

var (
	ErrInvalidLedgerAmount = apperr.Validation("invalid ledger entry amount")
	ErrInvalidLedgerType   = apperr.Validation("invalid ledger entry type")
)
