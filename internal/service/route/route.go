package route

import (
	"context"
	"fmt"
	"math"
	"strings"

	"fulfillment/internal/entities"
)

const MaxStops = 25

type Planner struct {
	gateway RouteGateway
}

func New(gateway RouteGateway) *Planner {
	return &Planner{
		gateway: gateway,
	}
}

// OptimizeRoute проксирует запрос во внешний сервис маршрутов. Геометрию здесь не считаем,
// только проверяем точки и возвращаем порядок обхода.
func (p *Planner) OptimizeRoute(
	ctx context.Context,
	caller entities.Caller,
	origin entities.Waypoint,
	stops []entities.Waypoint,
) (*entities.Route, error) {
	if !caller.Is(entities.RoleShipper) && !caller.Is(entities.RoleOperator) {
		return nil, ErrRouteNotAllowed
	}
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	if len(stops) > MaxStops {
		return nil, fmt.Errorf("%w: %d, max %d", ErrTooManyStops, len(stops), MaxStops)
	}
	if err := validateWaypoint(origin); err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}

	seen := make(map[string]struct{}, len(stops))
	for _, stop := range stops {
		if err := validateWaypoint(stop); err != nil {
			return nil, fmt.Errorf("stop %q: %w", stop.ID, err)
		}
		if _, ok := seen[stop.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStop, stop.ID)
		}
		seen[stop.ID] = struct{}{}
	}

	// одна точка уже оптимальна
	if len(stops) == 1 {
		return &entities.Route{Order: []string{stops[0].ID}}, nil
	}

	route, err := p.gateway.OptimizeRoute(ctx, origin, stops)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}
	return route, nil
}

func validateWaypoint(w entities.Waypoint) error {
	if strings.TrimSpace(w.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidWaypoint)
	}
	if math.IsNaN(w.Lat) || w.Lat < -90 || w.Lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidWaypoint, w.Lat)
	}
	if math.IsNaN(w.Lng) || w.Lng < -180 || w.Lng > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidWaypoint, w.Lng)
	}
	return nil
}
