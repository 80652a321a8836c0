package wire

import (
	"waste-pickup/internal/adaptor"
	"waste-pickup/internal/data/repository"
	"waste-pickup/internal/usecase"
	"waste-pickup/pkg/middleware"
	"waste-pickup/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, clock usecase.Clock, logger *zap.Logger) *App {
	service := usecase.NewService(repo, clock, logger)
	handler := adaptor.NewHandler(service, config.App.Name, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.Get("/health", handler.Health.Health)

	r.Route("/api", func(api chi.Router) {
		wireHealth(api, handler.Health)
		wireAuth(api, handler.Auth)
		wirePickup(api, handler.Pickup)
		wireWasteLog(api, handler.WasteLog)
	})

	return r
}
