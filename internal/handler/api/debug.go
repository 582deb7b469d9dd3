package api

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/middleware"
	"github.com/crmrapid/portal/internal/repository"
)

// DebugStore is the slice of the repository the tracking diagnostics read
// and write through.
type DebugStore interface {
	CountEmailOpens(ctx context.Context) (int64, error)
	CountEmailOpensForInvoice(ctx context.Context, invoiceID pgtype.UUID) (int64, error)
	ListEmailOpensForInvoice(ctx context.Context, invoiceID pgtype.UUID) ([]repository.EmailOpen, error)
	CreateEmailOpen(ctx context.Context, arg repository.CreateEmailOpenParams) (repository.EmailOpen, error)
}

// DebugHandler serves GET /debug-email-tracking, an operator utility for
// verifying that the open-tracking pipeline can read and write.
type DebugHandler struct {
	store DebugStore
}

// NewDebugHandler creates a new debug handler.
func NewDebugHandler(store DebugStore) *DebugHandler {
	return &DebugHandler{store: store}
}

// Tracking handles GET /debug-email-tracking?action=...
func (h *DebugHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	switch action := r.URL.Query().Get("action"); action {
	case "check_tracking":
		h.checkTracking(w, r)
	case "test_tracking":
		h.testTracking(w, r)
	case "fix_policies":
		// Open rows are written with the service's own credentials, so
		// there are no per-row access policies left to repair.
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"action":  action,
			"message": "No tracking policies require repair",
		})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Unknown action; expected check_tracking, test_tracking, or fix_policies",
		})
	}
}

func (h *DebugHandler) checkTracking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.store.CountEmailOpens(ctx)
	if err != nil {
		writeDebugError(w, r, "Failed to count email opens", err)
		return
	}

	result := map[string]interface{}{
		"success":     true,
		"action":      "check_tracking",
		"total_opens": total,
	}

	// With an invoice_id the check drills into that invoice's opens.
	var invoiceID pgtype.UUID
	if err := invoiceID.Scan(r.URL.Query().Get("invoice_id")); err == nil {
		count, err := h.store.CountEmailOpensForInvoice(ctx, invoiceID)
		if err != nil {
			writeDebugError(w, r, "Failed to count invoice opens", err)
			return
		}
		opens, err := h.store.ListEmailOpensForInvoice(ctx, invoiceID)
		if err != nil {
			writeDebugError(w, r, "Failed to list invoice opens", err)
			return
		}
		result["invoice_opens"] = count
		result["opens"] = debugOpenRows(opens)
	}

	writeJSON(w, http.StatusOK, result)
}

// testTracking inserts a synthetic open row so the whole write path can be
// verified end to end without sending an email.
func (h *DebugHandler) testTracking(w http.ResponseWriter, r *http.Request) {
	var invoiceID, customerID pgtype.UUID
	if err := invoiceID.Scan(r.URL.Query().Get("invoice_id")); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "test_tracking requires a valid invoice_id",
		})
		return
	}
	if err := customerID.Scan(r.URL.Query().Get("customer_id")); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "test_tracking requires a valid customer_id",
		})
		return
	}

	open, err := h.store.CreateEmailOpen(r.Context(), repository.CreateEmailOpenParams{
		InvoiceID:  invoiceID,
		CustomerID: customerID,
		UserAgent:  pgtype.Text{String: "debug-email-tracking", Valid: true},
	})
	if err != nil {
		writeDebugError(w, r, "Failed to insert test open", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"action":  "test_tracking",
		"open":    debugOpenRow(open),
	})
}

type debugOpen struct {
	InvoiceID  string `json:"invoice_id"`
	CustomerID string `json:"customer_id"`
	IPAddress  string `json:"ip_address,omitempty"`
	UserAgent  string `json:"user_agent,omitempty"`
	OpenedAt   string `json:"opened_at,omitempty"`
}

func debugOpenRow(open repository.EmailOpen) debugOpen {
	row := debugOpen{
		InvoiceID:  uuidText(open.InvoiceID),
		CustomerID: uuidText(open.CustomerID),
		IPAddress:  open.IpAddress.String,
		UserAgent:  open.UserAgent.String,
	}
	if open.OpenedAt.Valid {
		row.OpenedAt = open.OpenedAt.Time.UTC().Format(time.RFC3339)
	}
	return row
}

func debugOpenRows(opens []repository.EmailOpen) []debugOpen {
	rows := make([]debugOpen, 0, len(opens))
	for _, open := range opens {
		rows = append(rows, debugOpenRow(open))
	}
	return rows
}

func uuidText(u pgtype.UUID) string {
	v, err := u.Value()
	if err != nil || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func writeDebugError(w http.ResponseWriter, r *http.Request, message string, err error) {
	middleware.GetLogger(r.Context()).Error("email tracking diagnostic failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
