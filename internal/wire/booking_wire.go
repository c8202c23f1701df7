package wire

import (
	"restaurant-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// ==================== BOOKING ROUTES ====================
	// Lists carry the guest's email and the table number.
	r.Get("/api/bookings", bookingHandler.GetBookings)
	r.Get("/api/restaurants/{id}/bookings", bookingHandler.GetRestaurantBookings)

	r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
	r.Post("/api/bookings", bookingHandler.CreateBooking)
	r.Put("/api/bookings/{id}", bookingHandler.UpdateBooking)
	r.Delete("/api/bookings/{id}", bookingHandler.DeleteBooking)
}
