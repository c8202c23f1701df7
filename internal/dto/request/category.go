package request

type CreateCategoryRequest struct {
	RestaurantID int64   `json:"restaurantId" validate:"required,gt=0"`
	Name         string  `json:"name" validate:"required,max=255"`
	ImgURL       *string `json:"imgurl"`
}

type UpdateCategoryRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	ImgURL *string `json:"imgurl,omitempty"`
}
