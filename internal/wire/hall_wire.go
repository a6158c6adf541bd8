package wire

import (
	"hall-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHall(r chi.Router, hallHandler *adaptor.HallHandler, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/halls", func(r chi.Router) {
		// GET /api/halls - Browse hall listings with filters
		r.Get("/", hallHandler.GetHalls)

		// GET /api/halls/{id} - Hall details (null data when missing)
		r.Get("/{id}", hallHandler.GetHallByID)

		// GET /api/halls/{id}/availability - Check a date for approved bookings
		r.Get("/{id}/availability", bookingHandler.CheckAvailability)

		// Admin hall management. Caller identity is not enforced here;
		// the deployment fronts admin routes with its own gateway.
		r.Post("/", hallHandler.CreateHall)
		r.Put("/{id}", hallHandler.UpdateHall)
		r.Delete("/{id}", hallHandler.DeleteHall)
	})
}
