package wire

import (
	"net/http"

	"restaurant-ops/internal/adaptor"
	"restaurant-ops/internal/data/repository"
	"restaurant-ops/internal/usecase"
	"restaurant-ops/pkg/messaging"
	"restaurant-ops/pkg/middleware"
	"restaurant-ops/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, publisher messaging.Publisher, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	wireRestaurant(r, handler.Restaurant)
	wireCategory(r, handler.Category)
	wireDish(r, handler.Dish)
	wireTable(r, handler.Table)
	wireParkingSlot(r, handler.ParkingSlot)
	wireBooking(r, handler.Booking)
	wireOrder(r, handler.Order)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
