package adaptor

import (
	"net/http"

	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/usecase"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

type RestaurantHandler struct {
	service usecase.RestaurantService
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		log:     log.With(zap.String("handler", "restaurant")),
	}
}

// GetRestaurants handles GET /api/restaurants
func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	restaurants, err := h.service.GetRestaurants(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurants")
		return
	}

	utils.ResponseSuccess(w, "Restaurants retrieved", restaurants)
}

// GetRestaurantByID handles GET /api/restaurants/{id}
func (h *RestaurantHandler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "restaurant")
	if !ok {
		return
	}

	restaurant, err := h.service.GetRestaurantByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant retrieved", restaurant)
}

// CreateRestaurant handles POST /api/restaurants (owner signup)
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRestaurantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	restaurant, err := h.service.CreateRestaurant(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create restaurant")
		return
	}

	utils.ResponseCreated(w, "Restaurant registered successfully", restaurant)
}

// UpdateRestaurant handles PUT /api/restaurants/{id}
func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "restaurant")
	if !ok {
		return
	}

	var req request.UpdateRestaurantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	restaurant, err := h.service.UpdateRestaurant(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant updated", restaurant)
}

// DeleteRestaurant handles DELETE /api/restaurants/{id}
func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "restaurant")
	if !ok {
		return
	}

	restaurant, err := h.service.DeleteRestaurant(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant deleted", restaurant)
}
