package mocks

import (
	"context"

	"restaurant-ops/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type RestaurantRepository struct {
	mock.Mock
}

func (m *RestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *RestaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) FindByEmail(ctx context.Context, email string) (*entity.Restaurant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
