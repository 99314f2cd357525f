package route

import "fulfillment/internal/pkg/apperr"

var (
	ErrNoStops         = apperr.Validation("at least one stop is required")
	ErrTooManyStops    = apperr.Validation("too many stops")
	ErrInvalidWaypoint = apperr.Validation("invalid waypoint")
	ErrDuplicateStop   = apperr.Validation("duplicate stop id")

	ErrRouteNotAllowed = apperr.Forbidden("only shippers and operators plan routes")
)
