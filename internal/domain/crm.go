// Package domain provides core business types and error codes shared by
// the service and handler layers.
package domain

// Invoice statuses. Status and document type are independent fields: an
// estimate carries both Type "estimate" and Status "estimate" until it is
// converted or sent.
const (
	InvoiceStatusDraft    = "draft"
	InvoiceStatusSent     = "sent"
	InvoiceStatusPaid     = "paid"
	InvoiceStatusVoid     = "void"
	InvoiceStatusEstimate = "estimate"
)

// Invoice document types.
const (
	InvoiceTypeService  = "service"
	InvoiceTypeProduct  = "product"
	InvoiceTypeEstimate = "estimate"
)

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid, InvoiceStatusEstimate:
		return true
	}
	return false
}

// ValidInvoiceType reports whether t is a known invoice type.
func ValidInvoiceType(t string) bool {
	switch t {
	case InvoiceTypeService, InvoiceTypeProduct, InvoiceTypeEstimate:
		return true
	}
	return false
}

// Invoice-related domain errors.
var (
	ErrInvoiceAlreadyPaid = &Error{Code: ECONFLICT, Message: "Invoice already marked as paid"}
	ErrInvoiceNoItems     = &Error{Code: EINVALID, Message: "Invoice requires at least one line item"}
	ErrInvoiceNoCustomer  = &Error{Code: EINVALID, Message: "Invoice requires a customer"}
)

// Customer-related domain errors.
var (
	ErrCustomerHasInvoices = &Error{Code: ECONFLICT, Message: "Customer has invoices and cannot be deleted"}
)

// BusinessContext is the per-account presentation context served to clients
// at startup: the business identity and the currency symbol every money
// value should be rendered with. It replaces ad-hoc per-page lookups.
type BusinessContext struct {
	BusinessName   string `json:"business_name"`
	BusinessEmail  string `json:"business_email"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
	LogoURL        string `json:"logo_url,omitempty"`
}

// CurrencySymbol maps an ISO currency code to its display symbol.
// Unknown codes fall back to the code itself.
func CurrencySymbol(code string) string {
	switch code {
	case "USD", "CAD", "AUD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	default:
		return code
	}
}
