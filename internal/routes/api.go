package routes

import (
	"github.com/crmrapid/portal/internal/router"
)

// RegisterAPIRoutes registers the CRM API surface.
//
// The tracking beacon and debug utility live outside /api: the beacon URL
// is baked into sent emails and must stay stable.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	// Business context, loaded once by clients at startup
	r.Get("/api/context", deps.ProfileHandler.Context)

	// Customers
	r.Get("/api/customers", deps.CustomerHandler.List)
	r.Post("/api/customers", deps.CustomerHandler.Create)
	r.Get("/api/customers/{id}", deps.CustomerHandler.Get)
	r.Put("/api/customers/{id}", deps.CustomerHandler.Update)
	r.Delete("/api/customers/{id}", deps.CustomerHandler.Delete)

	// Invoices and estimates
	r.Get("/api/invoices", deps.InvoiceHandler.List)
	r.Post("/api/invoices", deps.InvoiceHandler.Create)
	r.Get("/api/invoices/{id}", deps.InvoiceHandler.Get)
	r.Put("/api/invoices/{id}", deps.InvoiceHandler.Update)
	r.Delete("/api/invoices/{id}", deps.InvoiceHandler.Delete)
	r.Post("/api/invoices/{id}/pay", deps.InvoiceHandler.Pay)
	r.Post("/api/invoices/{id}/send", deps.InvoiceHandler.Send)

	// Inventory
	r.Get("/api/inventory/categories", deps.InventoryHandler.ListCategories)
	r.Post("/api/inventory/categories", deps.InventoryHandler.CreateCategory)
	r.Get("/api/inventory", deps.InventoryHandler.List)
	r.Post("/api/inventory", deps.InventoryHandler.Create)
	r.Get("/api/inventory/{id}", deps.InventoryHandler.Get)
	r.Put("/api/inventory/{id}", deps.InventoryHandler.Update)
	r.Delete("/api/inventory/{id}", deps.InventoryHandler.Delete)

	// Message inbox
	r.Get("/api/messages", deps.MessageHandler.List)

	// Business profile
	r.Get("/api/profile", deps.ProfileHandler.Get)
	r.Put("/api/profile", deps.ProfileHandler.Update)
	r.Post("/api/profile/logo", deps.ProfileHandler.UploadLogo)

	// Invoice settings
	r.Get("/api/settings/invoice", deps.SettingsHandler.Get)
	r.Put("/api/settings/invoice", deps.SettingsHandler.Update)

	// Dashboard summary
	r.Get("/api/dashboard", deps.DashboardHandler.Summary)

	// Email dispatch and rendering
	r.Post("/api/send-email", deps.SendEmailHandler.Send)
	r.Post("/api/generate-pdf", deps.PDFHandler.Generate)

	// Open tracking
	r.Get("/track-email-open", deps.TrackingHandler.Open)
	r.Get("/debug-email-tracking", deps.DebugHandler.Tracking)
}
