package request

type CreateDishRequest struct {
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Available   *bool   `json:"available"`
	ImgURL      *string `json:"imgurl"`
}

type UpdateDishRequest struct {
	CategoryID  *int64   `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Available   *bool    `json:"available,omitempty"`
	ImgURL      *string  `json:"imgurl,omitempty"`
}
