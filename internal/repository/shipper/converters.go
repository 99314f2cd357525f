package shipper

import (
	"fulfillment/internal/entities"
)

func ToDomain(s *ShipperDB) *entities.Shipper {
	if s == nil {
		return nil
	}

	return &entities.Shipper{
		ID:            s.ID,
		Name:          s.Name,
		Phone:         s.Phone,
		Status:        entities.ShipperStatusType(s.Status),
		TransportType: entities.ShipperTransportType(s.TransportType),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromDomainModify(shipperModify *entities.ShipperModify) *ShipperModifyDB {
	if shipperModify == nil {
		return nil
	}
	shipperDB := &ShipperModifyDB{
		ID:    shipperModify.ID,
		Name:  shipperModify.Name,
		Phone: shipperModify.Phone,
	}

	if shipperModify.Status != nil {
		statusType := shipperModify.Status.String()
		shipperDB.Status = &statusType
	}
	if shipperModify.TransportType != nil {
		transportType := shipperModify.TransportType.String()
		shipperDB.TransportType = &transportType
	}

	return shipperDB
}
