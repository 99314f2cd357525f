package wallet

import "fulfillment/internal/pkg/apperr"

var (
	ErrInvalidOrderID         = apperr.Validation("invalid order id")
	ErrInvalidShipperID       = apperr.Validation("invalid shipper id")
	ErrInvalidWithdrawalID    = apperr.Validation("invalid withdrawal id")
	ErrInvalidWalletKey       = apperr.Validation("invalid wallet key")
	ErrInvalidAmount          = apperr.Validation("invalid amount")
	ErrInvalidBankAccount     = apperr.Validation("invalid bank account")
	ErrMissingReason          = apperr.Validation("reason is required")
	ErrBelowMinimumWithdrawal = apperr.Validation("amount is below the minimum withdrawal")
	ErrPayoutExceedsTotal     = apperr.Validation("payout exceeds order total")

	ErrOrderNotPayable      = apperr.Conflict("order is not eligible for payout")
	ErrShipperMismatch      = apperr.Conflict("order was not delivered by this shipper")
	ErrPaymentNotRefundable = apperr.Conflict("payment cannot be refunded")
	ErrWithdrawalNotPending = apperr.Conflict("withdrawal request is not pending")
)
