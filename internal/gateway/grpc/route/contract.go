//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	routingv1 "fulfillment/internal/generated/proto/routing/v1"

	"google.golang.org/grpc"
)

type client interface {
	OptimizeRoute(ctx context.Context, in *routingv1.OptimizeRouteRequest, opts ...grpc.CallOption) (*routingv1.OptimizeRouteResponse, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
