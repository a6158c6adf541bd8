package adaptor

import (
	"net/http"

	"hall-booking/internal/usecase"
	"hall-booking/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// GetStats handles GET /api/admin/dashboard (admin)
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get dashboard stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
