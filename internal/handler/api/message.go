package api

import (
	"net/http"

	"github.com/crmrapid/portal/internal/handler"
	"github.com/crmrapid/portal/internal/service"
)

// MessageHandler serves the sent-email inbox at /api/messages.
type MessageHandler struct {
	messages service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messages service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// List handles GET /api/messages. Each row carries its open count.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.ListMessages(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
