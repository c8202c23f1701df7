package adaptor

import (
	"net/http"

	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/usecase"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBookings handles GET /api/bookings?restaurantId=
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := queryID(w, r, "restaurantId")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

// GetRestaurantBookings handles GET /api/restaurants/{id}/bookings
func (h *BookingHandler) GetRestaurantBookings(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurant")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

func (h *BookingHandler) listByRestaurant(w http.ResponseWriter, r *http.Request, restaurantID int64) {
	bookings, err := h.service.GetBookingsByRestaurant(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "booking")
	if !ok {
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", booking)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// UpdateBooking handles PUT /api/bookings/{id}
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "booking")
	if !ok {
		return
	}

	var req request.UpdateBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated", booking)
}

// DeleteBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "booking")
	if !ok {
		return
	}

	booking, err := h.service.DeleteBooking(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted", booking)
}
