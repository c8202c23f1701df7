package adaptor

import (
	"net/http"

	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/usecase"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

// OrderHandler serves the /api/order_management routes.
type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// GetOrders handles GET /api/order_management?restaurantId=
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := queryID(w, r, "restaurantId")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

// GetRestaurantOrders handles GET /api/restaurants/{id}/orders
func (h *OrderHandler) GetRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurant")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

func (h *OrderHandler) listByRestaurant(w http.ResponseWriter, r *http.Request, restaurantID int64) {
	orders, err := h.service.GetOrdersByRestaurant(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", orders)
}

// GetOrderByID handles GET /api/order_management/{id}
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "order")
	if !ok {
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved", order)
}

// CreateOrder handles POST /api/order_management
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order placed successfully", created)
}

// UpdateOrder handles PUT /api/order_management/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "order")
	if !ok {
		return
	}

	var req request.UpdateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.service.UpdateOrder(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order")
		return
	}

	utils.ResponseSuccess(w, "Order updated", order)
}

// DeleteOrder handles DELETE /api/order_management/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "order")
	if !ok {
		return
	}

	order, err := h.service.DeleteOrder(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete order")
		return
	}

	utils.ResponseSuccess(w, "Order deleted", order)
}
