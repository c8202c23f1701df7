package entity

type RestaurantStatus string

const (
	RestaurantStatusActive   RestaurantStatus = "ACTIVE"
	RestaurantStatusDeActive RestaurantStatus = "DE_ACTIVE"
)

type Restaurant struct {
	Base
	Name         string           `db:"name"`
	Email        string           `db:"email"`
	PasswordHash string           `db:"password"`
	Phone        string           `db:"phone"`
	Address      string           `db:"address"`
	Description  *string          `db:"description"`
	Logo         *string          `db:"logo"`
	BgImage      *string          `db:"bg_image"`
	Status       RestaurantStatus `db:"status"`
}
