// Package pdf renders invoices to PDF with gofpdf. Input arrives as loosely
// typed JSON from clients, so every numeric field is coerced defensively
// before layout: a malformed value becomes 0, never a failed render.
package pdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/crmrapid/portal/internal/money"
)

// MinPDFBytes is the smallest plausible output. Render fails rather than
// return a document below this size.
const MinPDFBytes = 1000

// InvoiceData is the wire shape accepted by the renderer. Numeric fields
// are json.RawMessage so that numbers, numeric strings, and null all
// coerce instead of failing the decode.
type InvoiceData struct {
	InvoiceNumber   string          `json:"invoice_number"`
	InvoiceDate     string          `json:"invoice_date"`
	DueDate         string          `json:"due_date"`
	Status          string          `json:"status"`
	Type            string          `json:"type"`
	BusinessName    string          `json:"business_name"`
	BusinessEmail   string          `json:"business_email"`
	BusinessAddress string          `json:"business_address"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerAddress string          `json:"customer_address"`
	Items           []ItemData      `json:"items"`
	Subtotal        json.RawMessage `json:"subtotal"`
	TaxRate         json.RawMessage `json:"tax_rate"`
	TaxAmount       json.RawMessage `json:"tax_amount"`
	Total           json.RawMessage `json:"total"`
	TaxLabel        string          `json:"tax_label"`
	Currency        string          `json:"currency"`
	Notes           string          `json:"notes"`
	Terms           string          `json:"terms"`
}

// ItemData is one loosely typed invoice line.
type ItemData struct {
	Description string          `json:"description"`
	Quantity    json.RawMessage `json:"quantity"`
	Rate        json.RawMessage `json:"rate"`
	Amount      json.RawMessage `json:"amount"`
}

// coerce turns a raw JSON value into a float64: numbers pass through,
// strings go through the money parser, everything else is 0.
func coerce(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return money.Parse(s)
	}
	return 0
}

// Render produces the PDF bytes for an invoice.
func Render(data InvoiceData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	currency := data.Currency
	if currency == "" {
		currency = "$"
	}

	title := "INVOICE"
	if strings.EqualFold(data.Type, "estimate") || strings.EqualFold(data.Status, "estimate") {
		title = "ESTIMATE"
	}

	// Header: business identity left, document title and number right
	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(120, 10, data.BusinessName)
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, title, "", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	if data.BusinessAddress != "" {
		doc.Cell(120, 5, data.BusinessAddress)
	} else {
		doc.Cell(120, 5, "")
	}
	doc.CellFormat(0, 5, data.InvoiceNumber, "", 1, "R", false, 0, "")
	if data.BusinessEmail != "" {
		doc.Cell(0, 5, data.BusinessEmail)
		doc.Ln(-1)
	}
	doc.Ln(8)

	// Bill-to block left, document details right
	detailY := doc.GetY()
	doc.SetFont("Helvetica", "B", 10)
	doc.Cell(95, 6, "Bill To")
	doc.Ln(-1)
	doc.SetFont("Helvetica", "", 10)
	doc.Cell(95, 5, data.CustomerName)
	doc.Ln(-1)
	if data.CustomerAddress != "" {
		doc.Cell(95, 5, data.CustomerAddress)
		doc.Ln(-1)
	}
	if data.CustomerEmail != "" {
		doc.Cell(95, 5, data.CustomerEmail)
		doc.Ln(-1)
	}
	billToEnd := doc.GetY()

	doc.SetY(detailY)
	writeDetail := func(label, value string) {
		if value == "" {
			return
		}
		doc.SetX(115)
		doc.SetFont("Helvetica", "B", 10)
		doc.Cell(30, 5, label)
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 5, value, "", 1, "R", false, 0, "")
	}
	writeDetail("Date", data.InvoiceDate)
	writeDetail("Due Date", data.DueDate)
	writeDetail("Status", strings.ToUpper(data.Status))
	if doc.GetY() < billToEnd {
		doc.SetY(billToEnd)
	}
	doc.Ln(10)

	// Items table
	doc.SetFillColor(240, 240, 240)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(95, 8, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	doc.CellFormat(35, 8, "Rate", "1", 0, "R", true, 0, "")
	doc.CellFormat(35, 8, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, it := range data.Items {
		qty := coerce(it.Quantity)
		rate := coerce(it.Rate)
		amount := coerce(it.Amount)
		doc.CellFormat(95, 7, it.Description, "1", 0, "L", false, 0, "")
		doc.CellFormat(20, 7, fmt.Sprintf("%.0f", qty), "1", 0, "C", false, 0, "")
		doc.CellFormat(35, 7, currency+money.Format(rate), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, currency+money.Format(amount), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	// Totals block, right-aligned
	writeTotal := func(label string, v float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 10)
		doc.SetX(110)
		doc.Cell(40, 6, label)
		doc.CellFormat(35, 6, currency+money.Format(v), "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal", coerce(data.Subtotal), false)
	taxLabel := data.TaxLabel
	if taxLabel == "" {
		taxLabel = "Tax"
	}
	if taxRate := coerce(data.TaxRate); taxRate > 0 {
		taxLabel = fmt.Sprintf("%s (%s%%)", taxLabel, money.Format(taxRate))
	}
	writeTotal(taxLabel, coerce(data.TaxAmount), false)
	writeTotal("Total", coerce(data.Total), true)
	doc.Ln(8)

	// Notes and terms footer
	if data.Notes != "" {
		doc.SetFont("Helvetica", "B", 10)
		doc.Cell(0, 6, "Notes")
		doc.Ln(-1)
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, data.Notes, "", "L", false)
		doc.Ln(2)
	}
	if data.Terms != "" {
		doc.SetFont("Helvetica", "B", 10)
		doc.Cell(0, 6, "Terms")
		doc.Ln(-1)
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, data.Terms, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render failed: %w", err)
	}
	out := buf.Bytes()
	if err := checkSize(out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkSize rejects output below MinPDFBytes, which only happens when the
// renderer produced a broken document.
func checkSize(out []byte) error {
	if len(out) < MinPDFBytes {
		return fmt.Errorf("pdf render produced %d bytes, want at least %d", len(out), MinPDFBytes)
	}
	return nil
}
