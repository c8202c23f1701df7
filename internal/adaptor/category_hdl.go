package adaptor

import (
	"net/http"

	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/usecase"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// GetCategories handles GET /api/categories?restaurantId=
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := queryID(w, r, "restaurantId")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

// GetRestaurantCategories handles GET /api/restaurants/{id}/categories
func (h *CategoryHandler) GetRestaurantCategories(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurant")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

func (h *CategoryHandler) listByRestaurant(w http.ResponseWriter, r *http.Request, restaurantID int64) {
	categories, err := h.service.GetCategoriesByRestaurant(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", categories)
}

// GetCategoryByID handles GET /api/categories/{id}
func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "category")
	if !ok {
		return
	}

	category, err := h.service.GetCategoryByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get category")
		return
	}

	utils.ResponseSuccess(w, "Category retrieved", category)
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created", category)
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "category")
	if !ok {
		return
	}

	var req request.UpdateCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated", category)
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "category")
	if !ok {
		return
	}

	category, err := h.service.DeleteCategory(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted", category)
}
