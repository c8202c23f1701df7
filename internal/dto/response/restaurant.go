package response

import (
	"time"

	"restaurant-ops/internal/data/entity"
)

// RestaurantResponse never carries the password hash.
type RestaurantResponse struct {
	ID          int64                   `json:"id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Phone       string                  `json:"phone"`
	Address     string                  `json:"address"`
	Description *string                 `json:"description"`
	Logo        *string                 `json:"logo"`
	BgImage     *string                 `json:"bgImage"`
	Status      entity.RestaurantStatus `json:"status"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func RestaurantToResponse(restaurant *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Email:       restaurant.Email,
		Phone:       restaurant.Phone,
		Address:     restaurant.Address,
		Description: restaurant.Description,
		Logo:        restaurant.Logo,
		BgImage:     restaurant.BgImage,
		Status:      restaurant.Status,
		CreatedAt:   restaurant.CreatedAt,
		UpdatedAt:   restaurant.UpdatedAt,
	}
}
