package entity

type Category struct {
	Base
	RestaurantID int64   `db:"restaurant_id"`
	Name         string  `db:"name"`
	ImgURL       *string `db:"imgurl"`
}
