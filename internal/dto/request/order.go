package request

import (
	"bytes"
	"strconv"
)

type CreateOrderRequest struct {
	UserID       int64              `json:"userId" validate:"required,gt=0"`
	RestaurantID int64              `json:"restaurantId" validate:"required,gt=0"`
	OrderItems   []OrderItemRequest `json:"orderItems" validate:"required,min=1,dive"`
	TotalAmount  *float64           `json:"totalAmount" validate:"required,gte=0"`
	OrderDate    string             `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	OrderTime    string             `json:"order_time" validate:"omitempty,datetime=15:04"`
	ContactInfo  *string            `json:"contact_info"`
	OrderType    string             `json:"order_type" validate:"required,max=32"`
	TableNo      *string            `json:"table_no"`
	TrnxID       *string            `json:"trnx_id"`
	TrnxReceipt  *string            `json:"trnx_receipt"`
}

// OrderItemRequest accepts numbers or numeric strings, the checkout page sends both.
// Money fields are pointers so an explicit 0 is kept apart from a missing value.
type OrderItemRequest struct {
	DishID   FlexInt    `json:"dishId" validate:"required,gt=0"`
	UnitRate *FlexFloat `json:"unit_rate" validate:"required,gte=0"`
	Quantity FlexInt    `json:"quantity" validate:"required,gt=0"`
	Price    *FlexFloat `json:"price" validate:"required,gte=0"`
}

type UpdateOrderRequest struct {
	Status      string  `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
	ContactInfo *string `json:"contact_info,omitempty"`
	TableNo     *string `json:"table_no,omitempty"`
	TrnxID      *string `json:"trnx_id,omitempty"`
	TrnxReceipt *string `json:"trnx_receipt,omitempty"`
}

// FlexInt decodes 2 and "2" alike.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*n = FlexInt(v)
	return nil
}

// FlexFloat decodes 10.5 and "10.5" alike.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}
