package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	routingv1 "fulfillment/internal/generated/proto/routing/v1"
	"fulfillment/internal/pkg/apperr"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	serviceName = "route-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrRouteUnavailable = apperr.ExternalUnavailable("route service unavailable")

type RouteGateway struct {
	client  client
	retrier retrier
	timeout time.Duration
}

func New(client client, timeout time.Duration) *RouteGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &RouteGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		timeout: timeout,
	}
}

func (g *RouteGateway) OptimizeRoute(
	ctx context.Context,
	origin entities.Waypoint,
	stops []entities.Waypoint,
) (*entities.Route, error) {
	req := toRequest(origin, stops)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var resp *routingv1.OptimizeRouteResponse
	err := g.executeWithMetrics(ctx, "OptimizeRoute", func(ctx context.Context) error {
		var err error
		resp, err = g.client.OptimizeRoute(ctx, req)
		return err
	})
	if err != nil {
		if isRetryableCode(err) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("gateway route, optimize: %w: %v", ErrRouteUnavailable, err)
		}
		return nil, fmt.Errorf("gateway route, optimize: %w", err)
	}

	route, err := toDomain(resp, stops)
	if err != nil {
		return nil, fmt.Errorf("gateway route, optimize: %w: %v", ErrRouteUnavailable, err)
	}
	return route, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// latency -> attempts -> retrier -> вызов
func (g *RouteGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
