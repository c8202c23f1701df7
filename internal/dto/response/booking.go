package response

import (
	"time"

	"restaurant-ops/internal/data/entity"
)

type BookingResponse struct {
	ID           int64                `json:"id"`
	UserID       int64                `json:"userId"`
	RestaurantID int64                `json:"restaurantId"`
	TableID      int64                `json:"tableId"`
	BookingTime  time.Time            `json:"bookingTime"`
	Status       entity.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	User         UserRef              `json:"user"`
	Table        TableRef             `json:"table"`
}

type UserRef struct {
	Email string `json:"email"`
}

type TableRef struct {
	TableNumber string `json:"tableNumber"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           booking.ID,
		UserID:       booking.UserID,
		RestaurantID: booking.RestaurantID,
		TableID:      booking.TableID,
		BookingTime:  booking.BookingTime,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
		User:         UserRef{Email: booking.UserEmail},
		Table:        TableRef{TableNumber: booking.TableNumber},
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking)
	}
	return out
}
