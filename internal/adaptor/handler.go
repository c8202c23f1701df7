package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"restaurant-ops/internal/usecase"
	"restaurant-ops/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Restaurant  *RestaurantHandler
	Category    *CategoryHandler
	Dish        *DishHandler
	Table       *TableHandler
	ParkingSlot *ParkingSlotHandler
	Booking     *BookingHandler
	Order       *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Restaurant:  NewRestaurantHandler(service.Restaurant, log),
		Category:    NewCategoryHandler(service.Category, log),
		Dish:        NewDishHandler(service.Dish, log),
		Table:       NewTableHandler(service.Table, log),
		ParkingSlot: NewParkingSlotHandler(service.ParkingSlot, log),
		Booking:     NewBookingHandler(service.Booking, log),
		Order:       NewOrderHandler(service.Order, log),
	}
}

// decodeAndValidate writes the 400 itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var numErr *strconv.NumError
		var timeErr *time.ParseError
		switch {
		case errors.As(err, &typeErr):
			utils.ResponseBadRequest(w, "Invalid data types", map[string]string{typeErr.Field: "Must be " + typeErr.Type.String()})
		case errors.As(err, &numErr), errors.As(err, &timeErr):
			utils.ResponseBadRequest(w, "Invalid data types", err.Error())
		default:
			utils.ResponseBadRequest(w, "Invalid request body", nil)
		}
		return false
	}

	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// pathID reads the {id} URL parameter, answering 400 when it is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request, label string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+label+" ID", map[string]string{"id": err.Error()})
		return 0, false
	}
	return id, true
}

// queryID reads a required numeric query parameter such as restaurantId.
func queryID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		utils.ResponseBadRequest(w, name+" query parameter is required", nil)
		return 0, false
	}

	id, err := utils.ParseID(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name, map[string]string{name: err.Error()})
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors onto status codes.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error", err.Error())
	}
}
