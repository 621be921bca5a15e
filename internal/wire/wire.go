package wire

import (
	"net/http"

	"ticket-office/internal/adaptor"
	"ticket-office/internal/data/repository"
	"ticket-office/internal/usecase"
	"ticket-office/pkg/middleware"
	"ticket-office/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, rdb *redis.Client, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, logger, nil)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, service, config, rdb, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	config *utils.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RateLimit(config.RateLimit, rdb, logger))

	// Apply routes
	wireAuth(r, handler.Auth, service.Auth, logger)
	wireSchedule(r, handler.Schedule, service.Auth, logger)
	wireBooking(r, handler.Booking, service.Auth, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
