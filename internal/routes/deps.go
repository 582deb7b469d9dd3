package routes

import (
	"github.com/crmrapid/portal/internal/handler/api"
)

// APIDeps contains the handlers behind /api and the tracking endpoints.
type APIDeps struct {
	// CRUD aggregates
	CustomerHandler  *api.CustomerHandler
	InvoiceHandler   *api.InvoiceHandler
	InventoryHandler *api.InventoryHandler
	MessageHandler   *api.MessageHandler
	ProfileHandler   *api.ProfileHandler
	SettingsHandler  *api.SettingsHandler
	DashboardHandler *api.DashboardHandler

	// Email + documents
	SendEmailHandler *api.SendEmailHandler
	TrackingHandler  *api.TrackingHandler
	PDFHandler       *api.PDFHandler
	DebugHandler     *api.DebugHandler
}
