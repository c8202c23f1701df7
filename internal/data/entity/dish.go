package entity

type Dish struct {
	Base
	CategoryID  int64   `db:"category_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Price       float64 `db:"price"`
	Available   bool    `db:"available"`
	ImgURL      *string `db:"imgurl"`

	// joined from categories on reads
	CategoryName string `db:"category_name"`
}
