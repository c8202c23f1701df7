package response

import (
	"time"

	"restaurant-ops/internal/data/entity"
)

type DishResponse struct {
	ID          int64        `json:"id"`
	CategoryID  int64        `json:"categoryId"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Price       float64      `json:"price"`
	Available   bool         `json:"available"`
	ImgURL      *string      `json:"imgurl"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Category    DishCategory `json:"category"`
}

type DishCategory struct {
	Name string `json:"name"`
}

func DishToResponse(dish *entity.Dish) DishResponse {
	return DishResponse{
		ID:          dish.ID,
		CategoryID:  dish.CategoryID,
		Name:        dish.Name,
		Description: dish.Description,
		Price:       dish.Price,
		Available:   dish.Available,
		ImgURL:      dish.ImgURL,
		CreatedAt:   dish.CreatedAt,
		UpdatedAt:   dish.UpdatedAt,
		Category:    DishCategory{Name: dish.CategoryName},
	}
}

func DishesToResponse(dishes []*entity.Dish) []DishResponse {
	out := make([]DishResponse, len(dishes))
	for i, dish := range dishes {
		out[i] = DishToResponse(dish)
	}
	return out
}
