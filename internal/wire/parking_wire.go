package wire

import (
	"restaurant-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireParkingSlot(r chi.Router, parkingSlotHandler *adaptor.ParkingSlotHandler) {
	// ==================== PARKING SLOT ROUTES ====================
	r.Get("/api/parking_slots", parkingSlotHandler.GetParkingSlots)
	r.Get("/api/restaurants/{id}/parking_slots", parkingSlotHandler.GetRestaurantParkingSlots)

	r.Get("/api/parking_slots/{id}", parkingSlotHandler.GetParkingSlotByID)
	r.Post("/api/parking_slots", parkingSlotHandler.CreateParkingSlot)
	r.Put("/api/parking_slots/{id}", parkingSlotHandler.UpdateParkingSlot)
	r.Delete("/api/parking_slots/{id}", parkingSlotHandler.DeleteParkingSlot)
}
