package adaptor

import (
	"net/http"

	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/usecase"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

type ParkingSlotHandler struct {
	service usecase.ParkingSlotService
	log     *zap.Logger
}

func NewParkingSlotHandler(service usecase.ParkingSlotService, log *zap.Logger) *ParkingSlotHandler {
	return &ParkingSlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "parking_slot")),
	}
}

// GetParkingSlots handles GET /api/parking_slots?restaurantId=
func (h *ParkingSlotHandler) GetParkingSlots(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := queryID(w, r, "restaurantId")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

// GetRestaurantParkingSlots handles GET /api/restaurants/{id}/parking_slots
func (h *ParkingSlotHandler) GetRestaurantParkingSlots(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurant")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

func (h *ParkingSlotHandler) listByRestaurant(w http.ResponseWriter, r *http.Request, restaurantID int64) {
	slots, err := h.service.GetParkingSlotsByRestaurant(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get parking slots")
		return
	}

	utils.ResponseSuccess(w, "Parking slots retrieved", slots)
}

// GetParkingSlotByID handles GET /api/parking_slots/{id}
func (h *ParkingSlotHandler) GetParkingSlotByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "parking slot")
	if !ok {
		return
	}

	slot, err := h.service.GetParkingSlotByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get parking slot")
		return
	}

	utils.ResponseSuccess(w, "Parking slot retrieved", slot)
}

// CreateParkingSlot handles POST /api/parking_slots
func (h *ParkingSlotHandler) CreateParkingSlot(w http.ResponseWriter, r *http.Request) {
	var req request.CreateParkingSlotRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	slot, err := h.service.CreateParkingSlot(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create parking slot")
		return
	}

	utils.ResponseCreated(w, "Parking slot created", slot)
}

// UpdateParkingSlot handles PUT /api/parking_slots/{id}
func (h *ParkingSlotHandler) UpdateParkingSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "parking slot")
	if !ok {
		return
	}

	var req request.UpdateParkingSlotRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	slot, err := h.service.UpdateParkingSlot(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update parking slot")
		return
	}

	utils.ResponseSuccess(w, "Parking slot updated", slot)
}

// DeleteParkingSlot handles DELETE /api/parking_slots/{id}
func (h *ParkingSlotHandler) DeleteParkingSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "parking slot")
	if !ok {
		return
	}

	slot, err := h.service.DeleteParkingSlot(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete parking slot")
		return
	}

	utils.ResponseSuccess(w, "Parking slot deleted", slot)
}
