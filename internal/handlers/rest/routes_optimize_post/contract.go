//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routes_optimize_post_test
package routes_optimize_post

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	OptimizeRoute(ctx context.Context, caller entities.Caller, origin entities.Waypoint, stops []entities.Waypoint) (*entities.Route, error)
}
