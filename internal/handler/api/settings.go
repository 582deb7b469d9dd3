package api

import (
	"net/http"

	"github.com/crmrapid/portal/internal/handler"
	"github.com/crmrapid/portal/internal/service"
)

// SettingsHandler serves /api/settings/invoice.
type SettingsHandler struct {
	settings service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /api/settings/invoice. Defaults are persisted on the
// first read, so this never 404s.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetInvoiceSettings(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Update handles PUT /api/settings/invoice
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var params service.InvoiceSettings
	if err := decodeJSON(r, "SettingsHandler.Update", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	settings, err := h.settings.UpdateInvoiceSettings(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
