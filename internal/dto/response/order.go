package response

import (
	"time"

	"restaurant-ops/internal/data/entity"
)

const orderDateLayout = "2006-01-02"

type OrderResponse struct {
	ID           int64               `json:"id"`
	UserID       int64               `json:"userId"`
	RestaurantID int64               `json:"restaurantId"`
	TotalAmount  float64             `json:"totalAmount"`
	OrderDate    string              `json:"order_date"`
	OrderTime    string              `json:"order_time"`
	ContactInfo  *string             `json:"contact_info"`
	OrderType    string              `json:"order_type"`
	TableNo      *string             `json:"table_no"`
	TrnxID       *string             `json:"trnx_id"`
	TrnxReceipt  *string             `json:"trnx_receipt"`
	Status       entity.OrderStatus  `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	User         UserRef             `json:"user"`
	OrderItems   []OrderItemResponse `json:"orderItems,omitempty"`
}

type OrderItemResponse struct {
	ID       int64   `json:"id"`
	OrderID  int64   `json:"orderId"`
	DishID   int64   `json:"dishId"`
	UnitRate float64 `json:"unit_rate"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Dish     DishRef `json:"dish"`
}

type DishRef struct {
	Name string `json:"name"`
}

// OrderCreatedResponse is the body of a successful order submission.
type OrderCreatedResponse struct {
	OrderID int64 `json:"orderId"`
}

func OrderToResponse(order *entity.Order, items []*entity.OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:           order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		TotalAmount:  order.TotalAmount,
		OrderDate:    order.OrderDate.Format(orderDateLayout),
		OrderTime:    order.OrderTime,
		ContactInfo:  order.ContactInfo,
		OrderType:    order.OrderType,
		TableNo:      order.TableNo,
		TrnxID:       order.TrnxID,
		TrnxReceipt:  order.TrnxReceipt,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
		User:         UserRef{Email: order.UserEmail},
	}

	if items != nil {
		resp.OrderItems = make([]OrderItemResponse, len(items))
		for i, item := range items {
			resp.OrderItems[i] = OrderItemResponse{
				ID:       item.ID,
				OrderID:  item.OrderID,
				DishID:   item.DishID,
				UnitRate: item.UnitRate,
				Quantity: item.Quantity,
				Price:    item.Price,
				Dish:     DishRef{Name: item.DishName},
			}
		}
	}

	return resp
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, order := range orders {
		out[i] = OrderToResponse(order, nil)
	}
	return out
}
