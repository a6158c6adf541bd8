package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"hall-booking/internal/dto/request"
	"hall-booking/internal/usecase"
	"hall-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CheckAvailability handles GET /api/halls/{id}/availability?event_date=...
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")

	eventDate, err := time.Parse(time.RFC3339, r.URL.Query().Get("event_date"))
	if err != nil {
		utils.ResponseBadRequest(w, "event_date must be an RFC 3339 timestamp", nil)
		return
	}

	availability, err := h.service.CheckAvailability(r.Context(), hallID, eventDate)
	if err != nil {
		respondError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBookings handles GET /api/bookings
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := &request.BookingListQuery{
		DateFrom: utils.ParseOptionalTime(q.Get("date_from")),
		DateTo:   utils.ParseOptionalTime(q.Get("date_to")),
	}
	if userID := q.Get("user_id"); userID != "" {
		query.UserID = &userID
	}
	if hallID := q.Get("hall_id"); hallID != "" {
		query.HallID = &hallID
	}
	if status := q.Get("status"); status != "" {
		query.Status = &status
	}

	bookings, err := h.service.GetBookings(r.Context(), query)
	if err != nil {
		respondError(w, h.log, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		respondError(w, h.log, err, "get booking by ID")
		return
	}

	// A missing booking is not an error here; data is simply null.
	utils.ResponseSuccess(w, "success", booking)
}

// UpdateBookingStatus handles PUT /api/bookings/{id}/status (admin)
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.UpdateBookingStatus(r.Context(), bookingID, req.Status)
	if err != nil {
		respondError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), bookingID, req.UserID)
	if err != nil {
		respondError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
