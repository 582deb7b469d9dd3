package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/email"
	"github.com/crmrapid/portal/internal/handler"
	"github.com/crmrapid/portal/internal/money"
	"github.com/crmrapid/portal/internal/service"
)

// InvoiceHandler serves /api/invoices, including the pay and send actions.
type InvoiceHandler struct {
	invoices   service.InvoiceService
	customers  service.CustomerService
	profiles   service.ProfileService
	dispatcher *email.Dispatcher
	accountID  string
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(
	invoices service.InvoiceService,
	customers service.CustomerService,
	profiles service.ProfileService,
	dispatcher *email.Dispatcher,
	accountID string,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoices:   invoices,
		customers:  customers,
		profiles:   profiles,
		dispatcher: dispatcher,
		accountID:  accountID,
	}
}

// List handles GET /api/invoices
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoices.ListInvoices(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

// Get handles GET /api/invoices/{id}
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoices.GetInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// Create handles POST /api/invoices
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params service.CreateInvoiceParams
	if err := decodeJSON(r, "InvoiceHandler.Create", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	inv, err := h.invoices.CreateInvoice(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

// Update handles PUT /api/invoices/{id}
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var params service.UpdateInvoiceParams
	if err := decodeJSON(r, "InvoiceHandler.Update", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	inv, err := h.invoices.UpdateInvoice(r.Context(), r.PathValue("id"), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// Pay handles POST /api/invoices/{id}/pay
func (h *InvoiceHandler) Pay(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoices.MarkInvoicePaid(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// Delete handles DELETE /api/invoices/{id}
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.invoices.DeleteInvoice(r.Context(), r.PathValue("id")); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Send handles POST /api/invoices/{id}/send. It builds the invoice email
// server-side and relays it through the dispatcher. The invoice status is
// not changed here; clients move draft invoices to "sent" via Update.
func (h *InvoiceHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "InvoiceHandler.Send"

	inv, err := h.invoices.GetInvoice(ctx, r.PathValue("id"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	customer, err := h.customers.GetCustomer(ctx, inv.CustomerID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if customer.Email == "" {
		handler.ErrorResponse(w, r, domain.Invalid(op, "Customer has no email address"))
		return
	}

	profile, err := h.profiles.GetProfile(ctx)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	businessName := profile.BusinessName
	if businessName == "" {
		businessName = "Your service provider"
	}

	docLabel, docTitle := "invoice", "Invoice"
	if inv.Type == domain.InvoiceTypeEstimate {
		docLabel, docTitle = "estimate", "Estimate"
	}

	messageID, err := h.dispatcher.Dispatch(ctx, &email.DispatchRequest{
		FromName:      businessName,
		ToEmail:       customer.Email,
		ToName:        customer.Name,
		Subject:       fmt.Sprintf("%s %s from %s", docTitle, inv.InvoiceNumber, businessName),
		HTMLContent:   invoiceHTML(businessName, customer.Name, docLabel, inv),
		InvoiceID:     inv.ID,
		CustomerID:    customer.ID,
		UserID:        h.accountID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceStatus: inv.Status,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    "Email sent successfully",
		"message_id": messageID,
	})
}

func invoiceHTML(businessName, customerName, docLabel string, inv *service.Invoice) string {
	var rows strings.Builder
	for _, item := range inv.Items {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>\n",
			item.Description, item.Quantity, money.Format(item.Rate), money.Format(item.Amount))
	}

	due := ""
	if inv.DueDate != nil {
		due = fmt.Sprintf("<p>Due date: %s</p>", inv.DueDate.Format("January 2, 2006"))
	}

	return fmt.Sprintf(`<html><body>
<p>Hi %s,</p>
<p>Please find your %s <strong>%s</strong> from %s below.</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Description</th><th>Qty</th><th>Rate</th><th>Amount</th></tr>
%s</table>
<p>Subtotal: %s<br>Tax: %s<br><strong>Total: %s</strong></p>
%s<p>Thank you for your business!</p>
</body></html>`,
		customerName, docLabel, inv.InvoiceNumber, businessName,
		rows.String(),
		money.Format(inv.Subtotal), money.Format(inv.TaxAmount), money.Format(inv.Total),
		due)
}
