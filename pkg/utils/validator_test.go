package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Email string   `json:"email" validate:"required,emailaddr"`
	Phone string   `json:"phone" validate:"required"`
	Total *float64 `json:"totalAmount" validate:"required,gte=0"`
	Items []item   `json:"orderItems" validate:"required,min=1,dive"`
}

type item struct {
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Status   string `json:"status" validate:"omitempty,oneof=AVAILABLE OCCUPIED RESERVED"`
}

func TestValidateStruct(t *testing.T) {
	zero := 0.0

	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(&signup{
			Email: "owner@sate.id",
			Phone: "0812",
			Total: &zero,
			Items: []item{{Quantity: 1}},
		})
		assert.Empty(t, errs)
	})

	t.Run("reports json field paths", func(t *testing.T) {
		errs := ValidateStruct(&signup{
			Email: "owner@sate",
			Items: []item{{Quantity: 0, Status: "BROKEN"}},
		})

		assert.Equal(t, map[string]string{
			"email":                  "Invalid email format",
			"phone":                  "This field is required",
			"totalAmount":            "This field is required",
			"orderItems[0].quantity": "This field is required",
			"orderItems[0].status":   "Must be one of: AVAILABLE, OCCUPIED, RESERVED",
		}, errs)
	})

	t.Run("empty slice", func(t *testing.T) {
		errs := ValidateStruct(&signup{Email: "a@b.co", Phone: "1", Total: &zero, Items: []item{}})
		assert.Equal(t, "Must contain at least 1 item(s)", errs["orderItems"])
	})
}

func TestEmailPattern(t *testing.T) {
	valid := []string{"owner@sate.id", "a.b+c@mail.co.id"}
	invalid := []string{"owner", "owner@sate", "owner @sate.id", "@sate.id", "owner@.id "}

	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), email)
	}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), email)
	}
}
