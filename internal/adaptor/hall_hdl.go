package adaptor

import (
	"encoding/json"
	"net/http"

	"hall-booking/internal/dto/request"
	"hall-booking/internal/usecase"
	"hall-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// CreateHall handles POST /api/halls (admin)
func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "success", hall)
}

// GetHalls handles GET /api/halls
func (h *HallHandler) GetHalls(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := &request.HallListQuery{
		CapacityMin: utils.ParseOptionalInt(q.Get("capacity_min")),
		CapacityMax: utils.ParseOptionalInt(q.Get("capacity_max")),
		PriceMin:    utils.ParseOptionalDecimal(q.Get("price_min")),
		PriceMax:    utils.ParseOptionalDecimal(q.Get("price_max")),
		Amenities:   utils.SplitCSV(q.Get("amenities")),
		IsActive:    utils.ParseOptionalBool(q.Get("is_active")),
	}
	if location := q.Get("location"); location != "" {
		query.Location = &location
	}

	halls, err := h.service.GetHalls(r.Context(), query)
	if err != nil {
		respondError(w, h.log, err, "get halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// GetHallByID handles GET /api/halls/{id}
func (h *HallHandler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")

	hall, err := h.service.GetHallByID(r.Context(), hallID)
	if err != nil {
		respondError(w, h.log, err, "get hall by ID")
		return
	}

	// A missing hall is not an error here; data is simply null.
	utils.ResponseSuccess(w, "success", hall)
}

// UpdateHall handles PUT /api/halls/{id} (admin)
func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")

	var req request.UpdateHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.UpdateHall(r.Context(), hallID, &req)
	if err != nil {
		respondError(w, h.log, err, "update hall")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// DeleteHall handles DELETE /api/halls/{id} (admin, soft delete)
func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")

	if err := h.service.DeactivateHall(r.Context(), hallID); err != nil {
		respondError(w, h.log, err, "deactivate hall")
		return
	}

	utils.ResponseSuccess(w, "hall deactivated", nil)
}
