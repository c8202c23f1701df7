package adaptor

import (
	"net/http"

	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/usecase"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

// DishHandler serves the /api/menus routes.
type DishHandler struct {
	service usecase.DishService
	log     *zap.Logger
}

func NewDishHandler(service usecase.DishService, log *zap.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		log:     log.With(zap.String("handler", "dish")),
	}
}

// GetDishes handles GET /api/menus?restaurantId= or ?categoryId=
func (h *DishHandler) GetDishes(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("categoryId") != "" {
		categoryID, ok := queryID(w, r, "categoryId")
		if !ok {
			return
		}

		dishes, err := h.service.GetDishesByCategory(r.Context(), categoryID)
		if err != nil {
			handleServiceError(w, h.log, err, "get dishes by category")
			return
		}

		utils.ResponseSuccess(w, "Menu retrieved", dishes)
		return
	}

	restaurantID, ok := queryID(w, r, "restaurantId")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

// GetRestaurantDishes handles GET /api/restaurants/{id}/menus
func (h *DishHandler) GetRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurant")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

func (h *DishHandler) listByRestaurant(w http.ResponseWriter, r *http.Request, restaurantID int64) {
	dishes, err := h.service.GetDishesByRestaurant(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get dishes")
		return
	}

	utils.ResponseSuccess(w, "Menu retrieved", dishes)
}

// GetDishByID handles GET /api/menus/{id}
func (h *DishHandler) GetDishByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "dish")
	if !ok {
		return
	}

	dish, err := h.service.GetDishByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get dish")
		return
	}

	utils.ResponseSuccess(w, "Dish retrieved", dish)
}

// CreateDish handles POST /api/menus
func (h *DishHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDishRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dish, err := h.service.CreateDish(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create dish")
		return
	}

	utils.ResponseCreated(w, "Dish created", dish)
}

// UpdateDish handles PUT /api/menus/{id}
func (h *DishHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "dish")
	if !ok {
		return
	}

	var req request.UpdateDishRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dish, err := h.service.UpdateDish(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update dish")
		return
	}

	utils.ResponseSuccess(w, "Dish updated", dish)
}

// DeleteDish handles DELETE /api/menus/{id}
func (h *DishHandler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "dish")
	if !ok {
		return
	}

	dish, err := h.service.DeleteDish(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete dish")
		return
	}

	utils.ResponseSuccess(w, "Dish deleted", dish)
}
