package wire

import (
	"restaurant-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	// ==================== CATEGORY ROUTES ====================
	// GET /api/categories?restaurantId=1
	r.Get("/api/categories", categoryHandler.GetCategories)
	r.Get("/api/restaurants/{id}/categories", categoryHandler.GetRestaurantCategories)

	r.Get("/api/categories/{id}", categoryHandler.GetCategoryByID)
	r.Post("/api/categories", categoryHandler.CreateCategory)
	r.Put("/api/categories/{id}", categoryHandler.UpdateCategory)
	r.Delete("/api/categories/{id}", categoryHandler.DeleteCategory)
}
