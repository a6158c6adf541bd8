package wire

import (
	"hall-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// POST /api/users - Sign up a new user
	r.Post("/api/users", userHandler.CreateUser)

	// GET /api/users - List all users
	r.Get("/api/users", userHandler.GetUsers)
}
