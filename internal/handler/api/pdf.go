package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/crmrapid/portal/internal/middleware"
	"github.com/crmrapid/portal/internal/pdf"
	"github.com/crmrapid/portal/internal/telemetry"
)

// PDFHandler serves POST /api/generate-pdf. Success streams the document;
// failure answers in the {error, message} shape the document viewer
// expects.
type PDFHandler struct{}

// NewPDFHandler creates a new PDF handler.
func NewPDFHandler() *PDFHandler {
	return &PDFHandler{}
}

// Generate handles POST /api/generate-pdf
func (h *PDFHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InvoiceData *pdf.InvoiceData `json:"invoiceData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.InvoiceData == nil {
		writePDFError(w, http.StatusInternalServerError, "Invoice data is required")
		return
	}

	doc, err := pdf.Render(*body.InvoiceData)
	if err != nil {
		middleware.GetLogger(r.Context()).Error("pdf render failed",
			"invoice_number", body.InvoiceData.InvoiceNumber,
			"error", err,
		)
		writePDFError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	telemetry.RecordPDFRendered()

	filename := "invoice.pdf"
	if number := body.InvoiceData.InvoiceNumber; number != "" {
		filename = number + ".pdf"
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func writePDFError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error":   http.StatusText(status),
		"message": message,
	})
}
