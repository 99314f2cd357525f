package order

import "fulfillment/internal/pkg/apperr"

var (
	ErrInvalidOrderID       = apperr.Validation("invalid order id")
	ErrInvalidDraft         = apperr.Validation("invalid order draft")
	ErrInvalidTargetStatus  = apperr.Validation("invalid target status")
	ErrMissingCancelReason  = apperr.Validation("cancel reason is required")
	ErrInvalidPaymentMethod = apperr.Validation("invalid payment method")

	ErrOrderAccessDenied = apperr.Forbidden("order is not accessible to caller")
	ErrTransitionDenied  = apperr.Forbidden("caller cannot drive this transition")

	ErrInvalidTransition     = apperr.Conflict("invalid status transition")
	ErrNotAssignedShipper    = apperr.Conflict("order is not claimed by this shipper")
	ErrShipperOnTrip         = apperr.Conflict("shipper is already delivering another order")
	ErrOrderAlreadyDelivered = apperr.Conflict("order already delivered")
	ErrOrderAlreadyCancelled = apperr.Conflict("order already cancelled")
)
