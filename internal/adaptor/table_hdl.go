package adaptor

import (
	"net/http"
	"strconv"

	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/usecase"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

type TableHandler struct {
	service usecase.TableService
	log     *zap.Logger
}

func NewTableHandler(service usecase.TableService, log *zap.Logger) *TableHandler {
	return &TableHandler{
		service: service,
		log:     log.With(zap.String("handler", "table")),
	}
}

// GetTables handles GET /api/tables?restaurantId=
func (h *TableHandler) GetTables(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := queryID(w, r, "restaurantId")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

// GetRestaurantTables handles GET /api/restaurants/{id}/tables
func (h *TableHandler) GetRestaurantTables(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurant")
	if !ok {
		return
	}
	h.listByRestaurant(w, r, restaurantID)
}

func (h *TableHandler) listByRestaurant(w http.ResponseWriter, r *http.Request, restaurantID int64) {
	tables, err := h.service.GetTablesByRestaurant(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get tables")
		return
	}

	utils.ResponseSuccess(w, "Tables retrieved", tables)
}

// GetTableByID handles GET /api/tables/{id}
func (h *TableHandler) GetTableByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "table")
	if !ok {
		return
	}

	table, err := h.service.GetTableByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get table")
		return
	}

	utils.ResponseSuccess(w, "Table retrieved", table)
}

// GetTableQRCode handles GET /api/tables/{id}/qrcode
func (h *TableHandler) GetTableQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "table")
	if !ok {
		return
	}

	png, err := h.service.GetTableQRCode(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get table QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// CreateTable handles POST /api/tables
func (h *TableHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTableRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	table, err := h.service.CreateTable(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create table")
		return
	}

	utils.ResponseCreated(w, "Table created", table)
}

// UpdateTable handles PUT /api/tables/{id}
func (h *TableHandler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "table")
	if !ok {
		return
	}

	var req request.UpdateTableRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	table, err := h.service.UpdateTable(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update table")
		return
	}

	utils.ResponseSuccess(w, "Table updated", table)
}

// DeleteTable handles DELETE /api/tables/{id}
func (h *TableHandler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "table")
	if !ok {
		return
	}

	table, err := h.service.DeleteTable(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete table")
		return
	}

	utils.ResponseSuccess(w, "Table deleted", table)
}
