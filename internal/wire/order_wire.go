package wire

import (
	"restaurant-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler) {
	// ==================== ORDER MANAGEMENT ROUTES ====================
	r.Get("/api/order_management", orderHandler.GetOrders)
	r.Get("/api/restaurants/{id}/orders", orderHandler.GetRestaurantOrders)

	// GET /api/order_management/{id} - Order with its items
	r.Get("/api/order_management/{id}", orderHandler.GetOrderByID)

	// POST /api/order_management - Checkout, responds with {orderId}
	r.Post("/api/order_management", orderHandler.CreateOrder)
	r.Put("/api/order_management/{id}", orderHandler.UpdateOrder)
	r.Delete("/api/order_management/{id}", orderHandler.DeleteOrder)
}
