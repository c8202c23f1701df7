package usecase

import (
	"context"
	"fmt"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/internal/data/repository"
	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/dto/response"

	"go.uber.org/zap"
)

type CategoryService interface {
	GetCategoriesByRestaurant(ctx context.Context, restaurantID int64) ([]response.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id int64) (*response.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) (*response.CategoryResponse, error)
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) GetCategoriesByRestaurant(ctx context.Context, restaurantID int64) ([]response.CategoryResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, restaurantID); err != nil {
		return nil, err
	}

	categories, err := s.repo.Category.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get categories for restaurant %d: %w", restaurantID, err)
	}

	return response.CategoriesToResponse(categories), nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*response.CategoryResponse, error) {
	category, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, req.RestaurantID); err != nil {
		return nil, err
	}

	category := &entity.Category{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		ImgURL:       req.ImgURL,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		return nil, translateError(err, "category", 0)
	}

	s.log.Info("Category created",
		zap.Int64("category_id", category.ID),
		zap.Int64("restaurant_id", category.RestaurantID),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error) {
	category, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.ImgURL != nil {
		category.ImgURL = req.ImgURL
	}

	if err := s.repo.Category.Update(ctx, category); err != nil {
		return nil, translateError(err, "category", id)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) (*response.CategoryResponse, error) {
	category, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Category.Delete(ctx, id); err != nil {
		if isReferenced(err) {
			return nil, fmt.Errorf("category %d has dishes that appear in orders: %w", id, ErrConflict)
		}
		return nil, translateError(err, "category", id)
	}

	s.log.Info("Category deleted", zap.Int64("category_id", id))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) findCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	if category == nil {
		return nil, notFound("category", id)
	}
	return category, nil
}
