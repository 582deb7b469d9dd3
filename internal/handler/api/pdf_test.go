package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmrapid/portal/internal/pdf"
)

func TestPDFHandlerGenerate(t *testing.T) {
	body := `{"invoiceData": {
		"invoice_number": "INV-100",
		"business_name": "Acme Plumbing",
		"customer_name": "Jane Doe",
		"items": [{"description": "Labor", "quantity": 2, "rate": 95.00, "amount": 190.00}],
		"subtotal": 190.00,
		"tax_rate": 10,
		"tax_amount": 19.00,
		"total": "209.00"
	}}`

	rec := httptest.NewRecorder()
	NewPDFHandler().Generate(rec, httptest.NewRequest(http.MethodPost, "/api/generate-pdf", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "INV-100.pdf")
	assert.GreaterOrEqual(t, rec.Body.Len(), pdf.MinPDFBytes)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestPDFHandlerMissingData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "null data", body: `{"invoiceData": null}`},
		{name: "malformed body", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewPDFHandler().Generate(rec, httptest.NewRequest(http.MethodPost, "/api/generate-pdf", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Invoice data is required", resp["message"])
			assert.NotEmpty(t, resp["error"])
		})
	}
}
