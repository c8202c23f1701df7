package mocks

import (
	"context"

	"restaurant-ops/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type ParkingSlotRepository struct {
	mock.Mock
}

func (m *ParkingSlotRepository) Create(ctx context.Context, slot *entity.ParkingSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *ParkingSlotRepository) FindByID(ctx context.Context, id int64) (*entity.ParkingSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ParkingSlot), args.Error(1)
}

func (m *ParkingSlotRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.ParkingSlot, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ParkingSlot), args.Error(1)
}

func (m *ParkingSlotRepository) Update(ctx context.Context, slot *entity.ParkingSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *ParkingSlotRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ParkingSlotRepository) FindByNumber(ctx context.Context, restaurantID int64, slotNumber string) (*entity.ParkingSlot, error) {
	args := m.Called(ctx, restaurantID, slotNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ParkingSlot), args.Error(1)
}
