package mocks

import (
	"context"

	"restaurant-ops/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type DishRepository struct {
	mock.Mock
}

func (m *DishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *DishRepository) FindByID(ctx context.Context, id int64) (*entity.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Dish), args.Error(1)
}

func (m *DishRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Dish), args.Error(1)
}

func (m *DishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *DishRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *DishRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Dish, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Dish), args.Error(1)
}
