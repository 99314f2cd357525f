package assignment

import "fulfillment/internal/pkg/apperr"

var (
	ErrInvalidOrderID   = apperr.Validation("invalid order id")
	ErrInvalidShipperID = apperr.Validation("invalid shipper id")

	ErrOrderAlreadyClaimed = apperr.Conflict("order already claimed by another shipper")
	ErrOrderNotReady       = apperr.Conflict("order is not ready for pickup")
	ErrShipperUnavailable  = apperr.Conflict("shipper is not available")
	ErrNotClaimedByShipper = apperr.Conflict("order is not claimed by this shipper")
)
