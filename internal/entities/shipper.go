package entities

import (
	"time"
)

type Shipper struct {
	ID            string
	Name          string
	Phone         string
	Status        ShipperStatusType
	TransportType ShipperTransportType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ShipperTransportType string

const (
	OnFoot  ShipperTransportType = "on_foot"
	Scooter ShipperTransportType = "scooter"
	Car     ShipperTransportType = "car"
)

const DefaultTransportType = OnFoot

func (t ShipperTransportType) String() string {
	return string(t)
}

func (t ShipperTransportType) Valid() bool {
	switch t {
	case OnFoot, Scooter, Car:
		return true
	}
	return false
}

type ShipperStatusType string

const (
	ShipperAvailable ShipperStatusType = "available"
	ShipperBusy      ShipperStatusType = "busy"
	ShipperOffline   ShipperStatusType = "offline"
)

const DefaultStatusType = ShipperAvailable

func (t ShipperStatusType) String() string {
	return string(t)
}

func (t ShipperStatusType) Valid() bool {
	switch t {
	case ShipperAvailable, ShipperBusy, ShipperOffline:
		return true
	}
	return false
}

type ShipperModify struct {
	ID            *string
	Name          *string
	Phone         *string
	Status        *ShipperStatusType
	TransportType *ShipperTransportType
}
