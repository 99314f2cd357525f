package delivery_eta

import (
	"time"

	"fulfillment/internal/entities"
)

type DeliveryTimeFactory struct{}

func New() *DeliveryTimeFactory {
	return &DeliveryTimeFactory{}
}

// EstimateDelivery ожидаемое время доставки от начала поездки.
func (d *DeliveryTimeFactory) EstimateDelivery(transportType entities.ShipperTransportType, tripStartedAt time.Time) time.Time {
	resultTime := tripStartedAt
	switch transportType {
	case entities.OnFoot:
		resultTime = resultTime.Add(time.Minute * 45)
	case entities.Scooter:
		resultTime = resultTime.Add(time.Minute * 25)
	case entities.Car:
		resultTime = resultTime.Add(time.Minute * 30)
	default:
		resultTime = resultTime.Add(time.Minute * 45)
	}

	return resultTime
}
