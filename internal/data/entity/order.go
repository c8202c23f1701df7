package entity

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

type Order struct {
	Base
	UserID       int64       `db:"user_id"`
	RestaurantID int64       `db:"restaurant_id"`
	TotalAmount  float64     `db:"total_amount"`
	OrderDate    time.Time   `db:"order_date"`
	OrderTime    string      `db:"order_time"`
	ContactInfo  *string     `db:"contact_info"`
	OrderType    string      `db:"order_type"`
	TableNo      *string     `db:"table_no"`
	TrnxID       *string     `db:"trnx_id"`
	TrnxReceipt  *string     `db:"trnx_receipt"`
	Status       OrderStatus `db:"status"`

	// joined on reads
	UserEmail string `db:"user_email"`
}

type OrderItem struct {
	ID       int64   `db:"id"`
	OrderID  int64   `db:"order_id"`
	DishID   int64   `db:"dish_id"`
	UnitRate float64 `db:"unit_rate"`
	Quantity int     `db:"quantity"`
	Price    float64 `db:"price"`

	// joined from dishes on reads
	DishName string `db:"dish_name"`
}
