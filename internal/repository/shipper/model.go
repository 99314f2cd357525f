package shipper

import "time"

type ShipperDB struct {
	ID            string
	Name          string
	Phone         string
	Status        string
	TransportType string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ShipperModifyDB struct {
	ID            *string
	Name          *string
	Phone         *string
	Status        *string
	TransportType *string
}
