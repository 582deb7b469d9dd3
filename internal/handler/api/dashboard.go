package api

import (
	"net/http"

	"github.com/crmrapid/portal/internal/handler"
	"github.com/crmrapid/portal/internal/service"
)

// DashboardHandler serves /api/dashboard.
type DashboardHandler struct {
	dashboard service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary handles GET /api/dashboard
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
