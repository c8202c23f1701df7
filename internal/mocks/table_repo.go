package mocks

import (
	"context"

	"restaurant-ops/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type TableRepository struct {
	mock.Mock
}

func (m *TableRepository) Create(ctx context.Context, table *entity.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *TableRepository) FindByID(ctx context.Context, id int64) (*entity.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Table), args.Error(1)
}

func (m *TableRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Table, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Table), args.Error(1)
}

func (m *TableRepository) Update(ctx context.Context, table *entity.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *TableRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TableRepository) FindByNumber(ctx context.Context, restaurantID int64, tableNumber string) (*entity.Table, error) {
	args := m.Called(ctx, restaurantID, tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Table), args.Error(1)
}
