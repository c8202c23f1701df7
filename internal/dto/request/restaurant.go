package request

type CreateRestaurantRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Email       string  `json:"email" validate:"required,emailaddr,max=255"`
	Password    string  `json:"password" validate:"required,max=72"`
	Phone       string  `json:"phone" validate:"required,max=32"`
	Address     string  `json:"address" validate:"required"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	BgImage     *string `json:"bgImage"`
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,emailaddr,max=255"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=1,max=32"`
	Address     *string `json:"address,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	BgImage     *string `json:"bgImage,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE DE_ACTIVE"`
}
