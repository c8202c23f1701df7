package entity

import "time"

// BookingStatus values may be set in any order; no transition graph is enforced.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

type Booking struct {
	Base
	UserID       int64         `db:"user_id"`
	RestaurantID int64         `db:"restaurant_id"`
	TableID      int64         `db:"table_id"`
	BookingTime  time.Time     `db:"booking_time"`
	Status       BookingStatus `db:"status"`

	// joined on reads
	UserEmail   string `db:"user_email"`
	TableNumber string `db:"table_number"`
}
