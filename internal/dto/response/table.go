package response

import (
	"time"

	"restaurant-ops/internal/data/entity"
)

type TableResponse struct {
	ID           int64             `json:"id"`
	RestaurantID int64             `json:"restaurantId"`
	TableNumber  string            `json:"tableNumber"`
	Capacity     int               `json:"capacity"`
	Status       entity.SpotStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type ParkingSlotResponse struct {
	ID           int64             `json:"id"`
	RestaurantID int64             `json:"restaurantId"`
	SlotNumber   string            `json:"slotNumber"`
	Status       entity.SpotStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func TableToResponse(table *entity.Table) TableResponse {
	return TableResponse{
		ID:           table.ID,
		RestaurantID: table.RestaurantID,
		TableNumber:  table.TableNumber,
		Capacity:     table.Capacity,
		Status:       table.Status,
		CreatedAt:    table.CreatedAt,
		UpdatedAt:    table.UpdatedAt,
	}
}

func TablesToResponse(tables []*entity.Table) []TableResponse {
	out := make([]TableResponse, len(tables))
	for i, table := range tables {
		out[i] = TableToResponse(table)
	}
	return out
}

func ParkingSlotToResponse(slot *entity.ParkingSlot) ParkingSlotResponse {
	return ParkingSlotResponse{
		ID:           slot.ID,
		RestaurantID: slot.RestaurantID,
		SlotNumber:   slot.SlotNumber,
		Status:       slot.Status,
		CreatedAt:    slot.CreatedAt,
		UpdatedAt:    slot.UpdatedAt,
	}
}

func ParkingSlotsToResponse(slots []*entity.ParkingSlot) []ParkingSlotResponse {
	out := make([]ParkingSlotResponse, len(slots))
	for i, slot := range slots {
		out[i] = ParkingSlotToResponse(slot)
	}
	return out
}
