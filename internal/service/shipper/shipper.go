package shipper

import (
	"context"
	"fmt"
	"strings"

	"fulfillment/internal/entities"

	"github.com/AlekSi/pointer"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// CreateShipper заводит профиль курьера. ID профиля совпадает с ID пользователя из токена.
func (s *Service) CreateShipper(ctx context.Context, caller entities.Caller, shipperModify entities.ShipperModify) (*entities.Shipper, error) {
	if !caller.Is(entities.RoleShipper) {
		return nil, ErrNotShipper
	}
	if shipperModify.Name == nil || shipperModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*shipperModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(*shipperModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if shipperModify.Status == nil {
		shipperModify.Status = pointer.To(entities.DefaultStatusType)
	}
	if !shipperModify.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if shipperModify.TransportType == nil {
		shipperModify.TransportType = pointer.To(entities.DefaultTransportType)
	}
	if !shipperModify.TransportType.Valid() {
		return nil, ErrInvalidTransport
	}

	shipperModify.ID = pointer.To(caller.ID)
	shipperModify.Name = pointer.To(strings.TrimSpace(*shipperModify.Name))
	shipperModify.Phone = pointer.To(strings.TrimSpace(*shipperModify.Phone))

	shipper, err := s.repository.Create(ctx, shipperModify)
	if err != nil {
		return nil, fmt.Errorf("create shipper: %w", err)
	}

	return shipper, nil
}

// UpdateShipper частичное обновление. Вызывается и из обработчика профиля,
// и из переходов заказа, которые занимают и освобождают курьера.
func (s *Service) UpdateShipper(ctx context.Context, shipperModify entities.ShipperModify) (*entities.Shipper, error) {
	if shipperModify.ID == nil || strings.TrimSpace(*shipperModify.ID) == "" {
		return nil, ErrInvalidShipperID
	}
	if shipperModify.Name == nil &&
		shipperModify.Phone == nil &&
		shipperModify.Status == nil &&
		shipperModify.TransportType == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if shipperModify.Name != nil && !isValidName(*shipperModify.Name) {
		return nil, ErrInvalidName
	}
	if shipperModify.Phone != nil && !isValidPhone(*shipperModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if shipperModify.Status != nil && !shipperModify.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if shipperModify.TransportType != nil && !shipperModify.TransportType.Valid() {
		return nil, ErrInvalidTransport
	}

	shipper, err := s.repository.Update(ctx, shipperModify)
	if err != nil {
		return nil, fmt.Errorf("update shipper: %w", err)
	}
	return shipper, nil
}

func (s *Service) GetShipper(ctx context.Context, id string) (*entities.Shipper, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidShipperID
	}

	shipper, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipper: %w", err)
	}

	return shipper, nil
}
