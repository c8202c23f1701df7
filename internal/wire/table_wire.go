package wire

import (
	"restaurant-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTable(r chi.Router, tableHandler *adaptor.TableHandler) {
	// ==================== TABLE ROUTES ====================
	// GET /api/tables?restaurantId=1
	r.Get("/api/tables", tableHandler.GetTables)
	r.Get("/api/restaurants/{id}/tables", tableHandler.GetRestaurantTables)

	r.Get("/api/tables/{id}", tableHandler.GetTableByID)
	r.Post("/api/tables", tableHandler.CreateTable)
	r.Put("/api/tables/{id}", tableHandler.UpdateTable)
	r.Delete("/api/tables/{id}", tableHandler.DeleteTable)

	// GET /api/tables/{id}/qrcode - PNG linking to the table's menu page
	r.Get("/api/tables/{id}/qrcode", tableHandler.GetTableQRCode)
}
