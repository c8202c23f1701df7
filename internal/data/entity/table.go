package entity

// SpotStatus is shared by dining tables and parking slots.
type SpotStatus string

const (
	SpotStatusAvailable SpotStatus = "AVAILABLE"
	SpotStatusOccupied  SpotStatus = "OCCUPIED"
	SpotStatusReserved  SpotStatus = "RESERVED"
)

type Table struct {
	Base
	RestaurantID int64      `db:"restaurant_id"`
	TableNumber  string     `db:"table_number"`
	Capacity     int        `db:"capacity"`
	Status       SpotStatus `db:"status"`
}
