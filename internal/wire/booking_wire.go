package wire

import (
	"hall-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Submit a booking request (status starts pending)
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings - List bookings with filters
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/bookings/{id} - Booking details (null data when missing)
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/bookings/{id}/status - Approve/reject/cancel (admin)
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)

		// PUT /api/bookings/{id}/cancel - Owner-initiated cancel
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
