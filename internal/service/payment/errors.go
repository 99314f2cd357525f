package payment

import "fulfillment/internal/pkg/apperr"

var (
	ErrInvalidOrderID        = apperr.Validation("invalid order id")
	ErrInvalidPaymentMethod  = apperr.Validation("invalid payment method")
	ErrPaymentMethodMismatch = apperr.Validation("payment method does not match the order")
	ErrInvalidCallback       = apperr.Validation("invalid transfer callback")

	ErrOrderAccessDenied = apperr.Forbidden("order belongs to another customer")

	ErrOrderCancelled         = apperr.Conflict("order is cancelled")
	ErrPaymentNotPending      = apperr.Conflict("payment is not awaiting confirmation")
	ErrCallbackAmountMismatch = apperr.Conflict("transfer amount does not match the payment")
)
