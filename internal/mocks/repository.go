package mocks

import (
	"restaurant-ops/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

// Repositories holds one mock per repository, wired into a repository.Repository.
type Repositories struct {
	Restaurant  *RestaurantRepository
	Category    *CategoryRepository
	Dish        *DishRepository
	Table       *TableRepository
	ParkingSlot *ParkingSlotRepository
	Booking     *BookingRepository
	Order       *OrderRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		Restaurant:  new(RestaurantRepository),
		Category:    new(CategoryRepository),
		Dish:        new(DishRepository),
		Table:       new(TableRepository),
		ParkingSlot: new(ParkingSlotRepository),
		Booking:     new(BookingRepository),
		Order:       new(OrderRepository),
	}
}

func (r *Repositories) Repository() *repository.Repository {
	return &repository.Repository{
		Restaurant:  r.Restaurant,
		Category:    r.Category,
		Dish:        r.Dish,
		Table:       r.Table,
		ParkingSlot: r.ParkingSlot,
		Booking:     r.Booking,
		Order:       r.Order,
	}
}

type expecter interface {
	AssertExpectations(t mock.TestingT) bool
}

func (r *Repositories) AssertExpectations(t mock.TestingT) {
	for _, m := range []expecter{r.Restaurant, r.Category, r.Dish, r.Table, r.ParkingSlot, r.Booking, r.Order} {
		m.AssertExpectations(t)
	}
}
