package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/email"
	"github.com/crmrapid/portal/internal/handler"
	"github.com/crmrapid/portal/internal/middleware"
)

// SendEmailHandler serves POST /api/send-email. Unlike the resource
// handlers it answers in the {success, error} shape its callers already
// speak.
type SendEmailHandler struct {
	dispatcher *email.Dispatcher
}

// NewSendEmailHandler creates a new send-email handler.
func NewSendEmailHandler(dispatcher *email.Dispatcher) *SendEmailHandler {
	return &SendEmailHandler{dispatcher: dispatcher}
}

// Send handles POST /api/send-email
func (h *SendEmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req email.DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSendError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	messageID, err := h.dispatcher.Dispatch(r.Context(), &req)
	if err != nil {
		logger := middleware.GetLogger(r.Context())
		logger.Error("email dispatch failed",
			"invoice_id", req.InvoiceID,
			"error", err,
		)

		// Provider failures carry the provider's own text; everything
		// else maps through the domain error taxonomy.
		var perr *email.ProviderError
		if errors.As(err, &perr) {
			writeSendError(w, http.StatusBadGateway, perr.Error())
			return
		}
		writeSendError(w, handler.ErrorCodeToHTTPStatus(domain.ErrorCode(err)), domain.ErrorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    "Email sent successfully",
		"message_id": messageID,
	})
}

func writeSendError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
