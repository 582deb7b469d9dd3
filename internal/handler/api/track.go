package api

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/email"
	"github.com/crmrapid/portal/internal/middleware"
	"github.com/crmrapid/portal/internal/repository"
	"github.com/crmrapid/portal/internal/telemetry"
)

// OpenStore is the slice of the repository the tracking beacon writes
// through.
type OpenStore interface {
	CreateEmailOpen(ctx context.Context, arg repository.CreateEmailOpenParams) (repository.EmailOpen, error)
}

// TrackingHandler serves GET /track-email-open, the 1x1 pixel loaded by
// email clients. The pixel is always returned: a broken or missing open
// record must never leak into the recipient's mail view.
type TrackingHandler struct {
	opens OpenStore
}

// NewTrackingHandler creates a new tracking handler.
func NewTrackingHandler(opens OpenStore) *TrackingHandler {
	return &TrackingHandler{opens: opens}
}

// Open handles GET /track-email-open
func (h *TrackingHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.recordOpen(r)

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(email.TrackingGIF)
}

func (h *TrackingHandler) recordOpen(r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	var invoiceID, customerID pgtype.UUID
	if err := invoiceID.Scan(r.URL.Query().Get("invoice_id")); err != nil {
		logger.Debug("tracking pixel without usable invoice_id")
		return
	}
	if err := customerID.Scan(r.URL.Query().Get("customer_id")); err != nil {
		logger.Debug("tracking pixel without usable customer_id")
		return
	}

	var ip pgtype.Text
	if addr := middleware.GetClientIPFromContext(ctx); addr != "" {
		ip = pgtype.Text{String: addr, Valid: true}
	}
	var ua pgtype.Text
	if agent := r.UserAgent(); agent != "" {
		ua = pgtype.Text{String: agent, Valid: true}
	}

	if _, err := h.opens.CreateEmailOpen(ctx, repository.CreateEmailOpenParams{
		InvoiceID:  invoiceID,
		CustomerID: customerID,
		IpAddress:  ip,
		UserAgent:  ua,
	}); err != nil {
		logger.Warn("failed to record email open", "error", err)
		return
	}

	telemetry.RecordOpenRecorded()
}
