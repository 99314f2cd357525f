//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"fulfillment/internal/entities"
)

type RouteGateway interface {
	OptimizeRoute(ctx context.Context, origin entities.Waypoint, stops []entities.Waypoint) (*entities.Route, error)
}
