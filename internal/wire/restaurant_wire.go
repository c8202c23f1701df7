package wire

import (
	"restaurant-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRestaurant(r chi.Router, restaurantHandler *adaptor.RestaurantHandler) {
	// ==================== RESTAURANT ROUTES ====================
	// GET /api/restaurants?page=1&per_page=10 - Paginated list
	r.Get("/api/restaurants", restaurantHandler.GetRestaurants)
	r.Get("/api/restaurants/{id}", restaurantHandler.GetRestaurantByID)

	// POST /api/restaurants - Owner signup
	r.Post("/api/restaurants", restaurantHandler.CreateRestaurant)
	r.Put("/api/restaurants/{id}", restaurantHandler.UpdateRestaurant)
	r.Delete("/api/restaurants/{id}", restaurantHandler.DeleteRestaurant)
}
