package request

type CreateParkingSlotRequest struct {
	RestaurantID int64  `json:"restaurantId" validate:"required,gt=0"`
	SlotNumber   string `json:"slotNumber" validate:"required,max=32"`
	Status       string `json:"status" validate:"omitempty,oneof=AVAILABLE OCCUPIED RESERVED"`
}

type UpdateParkingSlotRequest struct {
	SlotNumber *string `json:"slotNumber,omitempty" validate:"omitempty,min=1,max=32"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE OCCUPIED RESERVED"`
}
