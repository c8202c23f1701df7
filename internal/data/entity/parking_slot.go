package entity

type ParkingSlot struct {
	Base
	RestaurantID int64      `db:"restaurant_id"`
	SlotNumber   string     `db:"slot_number"`
	Status       SpotStatus `db:"status"`
}
