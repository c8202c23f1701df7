package usecase

import (
	"restaurant-ops/internal/data/repository"
	"restaurant-ops/pkg/messaging"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Restaurant  RestaurantService
	Category    CategoryService
	Dish        DishService
	Table       TableService
	ParkingSlot ParkingSlotService
	Booking     BookingService
	Order       OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, publisher messaging.Publisher, log *zap.Logger) *Service {
	return &Service{
		Restaurant:  NewRestaurantService(repo.Restaurant, config.Security.BcryptCost, log),
		Category:    NewCategoryService(repo, log),
		Dish:        NewDishService(repo, log),
		Table:       NewTableService(repo, config.App.PublicURL, log),
		ParkingSlot: NewParkingSlotService(repo, log),
		Booking:     NewBookingService(repo, log),
		Order:       NewOrderService(repo, publisher, log),
	}
}
