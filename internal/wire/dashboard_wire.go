package wire

import (
	"hall-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler) {
	// GET /api/admin/dashboard - Business metrics, recomputed per request
	r.Get("/api/admin/dashboard", dashboardHandler.GetStats)
}
