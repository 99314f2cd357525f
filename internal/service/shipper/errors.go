package shipper

import "fulfillment/internal/pkg/apperr"

var (
	ErrMissingRequiredFields = apperr.Validation("missing required fields")
	ErrInvalidShipperID      = apperr.Validation("invalid shipper id")
	ErrInvalidName           = apperr.Validation("invalid name")
	ErrInvalidStatus         = apperr.Validation("invalid status")
	ErrInvalidPhone          = apperr.Validation("invalid phone")
	ErrInvalidTransport      = apperr.Validation("invalid transport type")

	ErrNotShipper = apperr.Forbidden("only shippers have a shipper profile")
)
