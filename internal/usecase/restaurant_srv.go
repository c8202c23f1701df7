package usecase

import (
	"context"
	"fmt"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/internal/data/repository"
	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/dto/response"
	"restaurant-ops/pkg/database"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

type RestaurantService interface {
	GetRestaurants(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error)
	GetRestaurantByID(ctx context.Context, id int64) (*response.RestaurantResponse, error)

	// CreateRestaurant is the owner signup; new restaurants start DE_ACTIVE.
	CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error)
	UpdateRestaurant(ctx context.Context, id int64, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error)
	DeleteRestaurant(ctx context.Context, id int64) (*response.RestaurantResponse, error)
}

type restaurantService struct {
	repo       repository.RestaurantRepository
	bcryptCost int
	log        *zap.Logger
}

func NewRestaurantService(repo repository.RestaurantRepository, bcryptCost int, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo:       repo,
		bcryptCost: bcryptCost,
		log:        log.With(zap.String("service", "restaurant")),
	}
}

func (s *restaurantService) GetRestaurants(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error) {
	restaurants, err := s.repo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get restaurants: %w", err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count restaurants: %w", err)
	}

	restaurantResponses := make([]response.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		restaurantResponses[i] = response.RestaurantToResponse(restaurant)
	}

	s.log.Info("Restaurants retrieved",
		zap.Int("count", len(restaurants)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.Limit()),
	)

	return response.NewPaginatedResponse(restaurantResponses, req.Page, req.Limit(), total), nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id int64) (*response.RestaurantResponse, error) {
	restaurant, err := requireRestaurant(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check restaurant email: %w", err)
	}
	if existing != nil {
		s.log.Warn("Signup with registered email", zap.String("email", req.Email))
		return nil, fmt.Errorf("restaurant with email %s %w", req.Email, ErrConflict)
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	restaurant := &entity.Restaurant{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Address:      req.Address,
		Description:  req.Description,
		Logo:         req.Logo,
		BgImage:      req.BgImage,
		Status:       entity.RestaurantStatusDeActive,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		// lost the race against a concurrent signup
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("restaurant with email %s %w", req.Email, ErrConflict)
		}
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	s.log.Info("Restaurant registered",
		zap.Int64("restaurant_id", restaurant.ID),
		zap.String("email", restaurant.Email),
	)

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, id int64, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error) {
	restaurant, err := requireRestaurant(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != restaurant.Email {
		other, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check restaurant email: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("restaurant with email %s %w", *req.Email, ErrConflict)
		}
		restaurant.Email = *req.Email
	}
	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.Description != nil {
		restaurant.Description = req.Description
	}
	if req.Logo != nil {
		restaurant.Logo = req.Logo
	}
	if req.BgImage != nil {
		restaurant.BgImage = req.BgImage
	}
	if req.Status != nil {
		restaurant.Status = entity.RestaurantStatus(*req.Status)
	}

	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, translateError(err, "restaurant", id)
	}

	s.log.Info("Restaurant updated", zap.Int64("restaurant_id", id))

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id int64) (*response.RestaurantResponse, error) {
	restaurant, err := requireRestaurant(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translateError(err, "restaurant", id)
	}

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}
