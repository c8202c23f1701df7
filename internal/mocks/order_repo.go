package mocks

import (
	"context"

	"restaurant-ops/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateWithItems(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

func (m *OrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *OrderRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *OrderRepository) FindItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.OrderItem), args.Error(1)
}

func (m *OrderRepository) Update(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
