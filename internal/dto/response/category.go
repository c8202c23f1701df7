package response

import (
	"time"

	"restaurant-ops/internal/data/entity"
)

type CategoryResponse struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	Name         string    `json:"name"`
	ImgURL       *string   `json:"imgurl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:           category.ID,
		RestaurantID: category.RestaurantID,
		Name:         category.Name,
		ImgURL:       category.ImgURL,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}

func CategoriesToResponse(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		out[i] = CategoryToResponse(category)
	}
	return out
}
