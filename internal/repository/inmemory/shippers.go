package inmemory

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/entities"
)

type ShipperRepository struct {
	store *Store
}

func (s *Store) Shippers() *ShipperRepository {
	return &ShipperRepository{store: s}
}

func (r *ShipperRepository) Create(ctx context.Context, modify entities.ShipperModify) (*entities.Shipper, error) {
	var created entities.Shipper
	err := r.store.write(ctx, func(st *state) error {
		if modify.ID == nil || modify.Name == nil || modify.Phone == nil {
			return errors.New("inmemory: shipper id, name and phone are required")
		}
		for _, s := range st.shippers {
			if s.ID == *modify.ID || s.Phone == *modify.Phone {
				return entities.ErrShipperAlreadyExists
			}
		}

		now := time.Now().UTC()
		created = entities.Shipper{
			ID:            *modify.ID,
			Name:          *modify.Name,
			Phone:         *modify.Phone,
			Status:        entities.DefaultStatusType,
			TransportType: entities.DefaultTransportType,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if modify.Status != nil {
			created.Status = *modify.Status
		}
		if modify.TransportType != nil {
			created.TransportType = *modify.TransportType
		}

		st.shippers[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ShipperRepository) Update(ctx context.Context, modify entities.ShipperModify) (*entities.Shipper, error) {
	var updated entities.Shipper
	err := r.store.write(ctx, func(st *state) error {
		if modify.ID == nil {
			return entities.ErrShipperNotFound
		}
		s, ok := st.shippers[*modify.ID]
		if !ok {
			return entities.ErrShipperNotFound
		}
		if modify.Phone != nil {
			for _, other := range st.shippers {
				if other.ID != s.ID && other.Phone == *modify.Phone {
					return entities.ErrShipperAlreadyExists
				}
			}
			s.Phone = *modify.Phone
		}
		if modify.Name != nil {
			s.Name = *modify.Name
		}
		if modify.Status != nil {
			s.Status = *modify.Status
		}
		if modify.TransportType != nil {
			s.TransportType = *modify.TransportType
		}
		s.UpdatedAt = time.Now().UTC()

		st.shippers[s.ID] = s
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ShipperRepository) GetByID(ctx context.Context, id string) (*entities.Shipper, error) {
	var shipper entities.Shipper
	err := r.store.read(ctx, func(st *state) error {
		s, ok := st.shippers[id]
		if !ok {
			return entities.ErrShipperNotFound
		}
		shipper = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &shipper, nil
}
