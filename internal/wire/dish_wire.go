package wire

import (
	"restaurant-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDish(r chi.Router, dishHandler *adaptor.DishHandler) {
	// ==================== MENU ROUTES ====================
	// GET /api/menus?restaurantId=1 or /api/menus?categoryId=2
	r.Get("/api/menus", dishHandler.GetDishes)
	r.Get("/api/restaurants/{id}/menus", dishHandler.GetRestaurantDishes)

	r.Get("/api/menus/{id}", dishHandler.GetDishByID)
	r.Post("/api/menus", dishHandler.CreateDish)
	r.Put("/api/menus/{id}", dishHandler.UpdateDish)
	r.Delete("/api/menus/{id}", dishHandler.DeleteDish)
}
