package route

import (
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	routingv1 "fulfillment/internal/generated/proto/routing/v1"
)

var errMalformedResponse = errors.New("malformed route response")

func toRequest(origin entities.Waypoint, stops []entities.Waypoint) *routingv1.OptimizeRouteRequest {
	protoStops := make([]*routingv1.Waypoint, 0, len(stops))
	for _, stop := range stops {
		protoStops = append(protoStops, toProtoWaypoint(stop))
	}

	return &routingv1.OptimizeRouteRequest{
		Origin: toProtoWaypoint(origin),
		Stops:  protoStops,
	}
}

func toProtoWaypoint(w entities.Waypoint) *routingv1.Waypoint {
	return &routingv1.Waypoint{
		Id:  w.ID,
		Lat: w.Lat,
		Lng: w.Lng,
	}
}

// toDomain порядок обхода должен состоять только из переданных точек.
func toDomain(resp *routingv1.OptimizeRouteResponse, stops []entities.Waypoint) (*entities.Route, error) {
	if resp == nil {
		return nil, errMalformedResponse
	}
	if len(resp.GetOrder()) == 0 && len(stops) > 0 {
		return nil, fmt.Errorf("%w: missing order", errMalformedResponse)
	}

	known := make(map[string]struct{}, len(stops))
	for _, stop := range stops {
		known[stop.ID] = struct{}{}
	}

	order := make([]string, 0, len(resp.GetOrder()))
	for _, id := range resp.GetOrder() {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: unknown waypoint %q", errMalformedResponse, id)
		}
		order = append(order, id)
	}

	return &entities.Route{
		Order:           order,
		DistanceMeters:  resp.GetDistanceMeters(),
		DurationSeconds: resp.GetDurationSeconds(),
	}, nil
}
