package request

import "time"

type CreateBookingRequest struct {
	UserID       int64     `json:"userId" validate:"required,gt=0"`
	RestaurantID int64     `json:"restaurantId" validate:"required,gt=0"`
	TableID      int64     `json:"tableId" validate:"required,gt=0"`
	BookingTime  time.Time `json:"bookingTime" validate:"required"`
	Status       string    `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

// UpdateBookingRequest always needs a status, like the dashboard's booking modal sends.
type UpdateBookingRequest struct {
	Status      string     `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
	TableID     *int64     `json:"tableId,omitempty" validate:"omitempty,gt=0"`
	BookingTime *time.Time `json:"bookingTime,omitempty"`
}
