package request

type CreateTableRequest struct {
	RestaurantID int64  `json:"restaurantId" validate:"required,gt=0"`
	TableNumber  string `json:"tableNumber" validate:"required,max=32"`
	Capacity     int    `json:"capacity" validate:"required,gt=0"`
	Status       string `json:"status" validate:"omitempty,oneof=AVAILABLE OCCUPIED RESERVED"`
}

type UpdateTableRequest struct {
	TableNumber *string `json:"tableNumber,omitempty" validate:"omitempty,min=1,max=32"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE OCCUPIED RESERVED"`
}
