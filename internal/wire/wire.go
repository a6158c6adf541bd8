package wire

import (
	"net/http"

	"hall-booking/internal/adaptor"
	"hall-booking/internal/data/repository"
	"hall-booking/internal/usecase"
	"hall-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled application.
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies.
func Wiring(repo *repository.Repository, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireUser(r, handler.User)
	wireHall(r, handler.Hall, handler.Booking)
	wireBooking(r, handler.Booking)
	wireDashboard(r, handler.Dashboard)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
