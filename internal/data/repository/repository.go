package repository

import (
	"errors"

	"restaurant-ops/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Update and Delete when no row matched the id.
var ErrNotFound = errors.New("record not found")

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type Repository struct {
	Restaurant  RestaurantRepository
	Category    CategoryRepository
	Dish        DishRepository
	Table       TableRepository
	ParkingSlot ParkingSlotRepository
	Booking     BookingRepository
	Order       OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Restaurant:  NewRestaurantRepository(db, log),
		Category:    NewCategoryRepository(db, log),
		Dish:        NewDishRepository(db, log),
		Table:       NewTableRepository(db, log),
		ParkingSlot: NewParkingSlotRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Order:       NewOrderRepository(db, log),
	}
}
