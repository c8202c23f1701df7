package usecase

import (
	"context"
	"testing"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/mocks"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCategoryService_GetCategoriesByRestaurant(t *testing.T) {
	repos := mocks.NewRepositories()
	svc := NewCategoryService(repos.Repository(), zap.NewNop())

	repos.Restaurant.On("FindByID", mock.Anything, int64(7)).
		Return(&entity.Restaurant{Base: entity.Base{ID: 7}}, nil).Once()
	repos.Category.On("FindByRestaurantID", mock.Anything, int64(7)).Return([]*entity.Category{
		{Base: entity.Base{ID: 1}, RestaurantID: 7, Name: "Drinks"},
		{Base: entity.Base{ID: 2}, RestaurantID: 7, Name: "Grill"},
	}, nil).Once()

	categories, err := svc.GetCategoriesByRestaurant(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Drinks", categories[0].Name)
}

func TestCategoryService_CreateCategory_UnknownRestaurant(t *testing.T) {
	repos := mocks.NewRepositories()
	svc := NewCategoryService(repos.Repository(), zap.NewNop())

	repos.Restaurant.On("FindByID", mock.Anything, int64(99)).Return(nil, nil).Once()

	_, err := svc.CreateCategory(context.Background(), &request.CreateCategoryRequest{RestaurantID: 99, Name: "Drinks"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "restaurant 99 not found")
	repos.Category.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	t.Run("partial update keeps image", func(t *testing.T) {
		repos := mocks.NewRepositories()
		svc := NewCategoryService(repos.Repository(), zap.NewNop())

		img := "https://cdn.local/drinks.png"
		category := &entity.Category{Base: entity.Base{ID: 9}, RestaurantID: 7, Name: "Drinks", ImgURL: &img}
		repos.Category.On("FindByID", mock.Anything, int64(9)).Return(category, nil).Once()
		repos.Category.On("Update", mock.Anything, category).Return(nil).Once()

		name := "Cold Drinks"
		resp, err := svc.UpdateCategory(context.Background(), 9, &request.UpdateCategoryRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Cold Drinks", resp.Name)
		assert.Equal(t, &img, category.ImgURL)
		repos.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repos := mocks.NewRepositories()
		svc := NewCategoryService(repos.Repository(), zap.NewNop())

		repos.Category.On("FindByID", mock.Anything, int64(9)).Return(nil, nil).Once()

		name := "Desserts"
		_, err := svc.UpdateCategory(context.Background(), 9, &request.UpdateCategoryRequest{Name: &name})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCategoryService_DeleteCategory_ReferencedByOrders(t *testing.T) {
	repos := mocks.NewRepositories()
	svc := NewCategoryService(repos.Repository(), zap.NewNop())

	repos.Category.On("FindByID", mock.Anything, int64(8)).
		Return(&entity.Category{Base: entity.Base{ID: 8}, RestaurantID: 7}, nil).Once()
	repos.Category.On("Delete", mock.Anything, int64(8)).
		Return(&pgconn.PgError{Code: "23503"}).Once()

	_, err := svc.DeleteCategory(context.Background(), 8)

	assert.ErrorIs(t, err, ErrConflict)
}
