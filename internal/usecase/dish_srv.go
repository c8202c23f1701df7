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

// DishService backs the menu endpoints.
type DishService interface {
	GetDishesByRestaurant(ctx context.Context, restaurantID int64) ([]response.DishResponse, error)
	GetDishesByCategory(ctx context.Context, categoryID int64) ([]response.DishResponse, error)
	GetDishByID(ctx context.Context, id int64) (*response.DishResponse, error)
	CreateDish(ctx context.Context, req *request.CreateDishRequest) (*response.DishResponse, error)
	UpdateDish(ctx context.Context, id int64, req *request.UpdateDishRequest) (*response.DishResponse, error)
	DeleteDish(ctx context.Context, id int64) (*response.DishResponse, error)
}

type dishService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDishService(repo *repository.Repository, log *zap.Logger) DishService {
	return &dishService{
		repo: repo,
		log:  log.With(zap.String("service", "dish")),
	}
}

func (s *dishService) GetDishesByRestaurant(ctx context.Context, restaurantID int64) ([]response.DishResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, restaurantID); err != nil {
		return nil, err
	}

	dishes, err := s.repo.Dish.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get dishes for restaurant %d: %w", restaurantID, err)
	}

	return response.DishesToResponse(dishes), nil
}

func (s *dishService) GetDishesByCategory(ctx context.Context, categoryID int64) ([]response.DishResponse, error) {
	if err := s.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	dishes, err := s.repo.Dish.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get dishes for category %d: %w", categoryID, err)
	}

	return response.DishesToResponse(dishes), nil
}

func (s *dishService) GetDishByID(ctx context.Context, id int64) (*response.DishResponse, error) {
	dish, err := s.findDish(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.DishToResponse(dish)
	return &resp, nil
}

func (s *dishService) CreateDish(ctx context.Context, req *request.CreateDishRequest) (*response.DishResponse, error) {
	if err := s.requireCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	dish := &entity.Dish{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   available,
		ImgURL:      req.ImgURL,
	}

	if err := s.repo.Dish.Create(ctx, dish); err != nil {
		return nil, translateError(err, "dish", 0)
	}

	s.log.Info("Dish created",
		zap.Int64("dish_id", dish.ID),
		zap.Int64("category_id", dish.CategoryID),
		zap.Float64("price", dish.Price),
	)

	// pick up the joined category name
	return s.GetDishByID(ctx, dish.ID)
}

func (s *dishService) UpdateDish(ctx context.Context, id int64, req *request.UpdateDishRequest) (*response.DishResponse, error) {
	dish, err := s.findDish(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != dish.CategoryID {
		if err := s.requireCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		dish.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Description != nil {
		dish.Description = req.Description
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.Available != nil {
		dish.Available = *req.Available
	}
	if req.ImgURL != nil {
		dish.ImgURL = req.ImgURL
	}

	if err := s.repo.Dish.Update(ctx, dish); err != nil {
		return nil, translateError(err, "dish", id)
	}

	return s.GetDishByID(ctx, id)
}

func (s *dishService) DeleteDish(ctx context.Context, id int64) (*response.DishResponse, error) {
	dish, err := s.findDish(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Dish.Delete(ctx, id); err != nil {
		if isReferenced(err) {
			return nil, fmt.Errorf("dish %d appears in orders: %w", id, ErrConflict)
		}
		return nil, translateError(err, "dish", id)
	}

	s.log.Info("Dish deleted", zap.Int64("dish_id", id))

	resp := response.DishToResponse(dish)
	return &resp, nil
}

func (s *dishService) findDish(ctx context.Context, id int64) (*entity.Dish, error) {
	dish, err := s.repo.Dish.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dish %d: %w", id, err)
	}
	if dish == nil {
		return nil, notFound("dish", id)
	}
	return dish, nil
}

func (s *dishService) requireCategory(ctx context.Context, id int64) error {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get category %d: %w", id, err)
	}
	if category == nil {
		return notFound("category", id)
	}
	return nil
}
