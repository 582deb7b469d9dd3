package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/invoice"
	"github.com/crmrapid/portal/internal/repository"
	"github.com/crmrapid/portal/internal/telemetry"
)

// defaultDueDays is added to now when no due date is supplied on create.
const defaultDueDays = 30

// Invoice is the API view of an invoice row, with line items decoded from
// their stored jsonb form.
type Invoice struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customer_id"`
	InvoiceNumber string         `json:"invoice_number"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	Items         []invoice.Item `json:"items"`
	Subtotal      float64        `json:"subtotal"`
	TaxRate       float64        `json:"tax_rate"`
	TaxAmount     float64        `json:"tax_amount"`
	Total         float64        `json:"total"`
	Notes         string         `json:"notes,omitempty"`
	DueDate       *time.Time     `json:"due_date,omitempty"`
	PaidDate      *time.Time     `json:"paid_date,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// CreateInvoiceParams are the fields accepted on invoice create. Totals are
// never accepted from the client; they are recomputed here.
type CreateInvoiceParams struct {
	CustomerID string         `json:"customer_id"`
	Type       string         `json:"type"`
	Items      []invoice.Item `json:"items"`
	Notes      string         `json:"notes"`
	DueDate    *time.Time     `json:"due_date"`
}

// UpdateInvoiceParams are the fields accepted on invoice update. The tax
// rate is frozen at create time; updates recompute totals against it.
// Notes is a pointer so clients can distinguish "leave unchanged" (absent)
// from "clear" (empty string).
type UpdateInvoiceParams struct {
	CustomerID string         `json:"customer_id"`
	Status     string         `json:"status"`
	Items      []invoice.Item `json:"items"`
	Notes      *string        `json:"notes"`
	DueDate    *time.Time     `json:"due_date"`
}

// InvoiceService manages the invoice/estimate lifecycle.
type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]Invoice, error)
	GetInvoice(ctx context.Context, id string) (*Invoice, error)
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error)
	UpdateInvoice(ctx context.Context, id string, params UpdateInvoiceParams) (*Invoice, error)
	MarkInvoicePaid(ctx context.Context, id string) (*Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

type invoiceService struct {
	repo      repository.Querier
	settings  SettingsService
	accountID pgtype.UUID
}

// NewInvoiceService creates a new InvoiceService instance.
func NewInvoiceService(repo repository.Querier, settings SettingsService, accountID string) (InvoiceService, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	return &invoiceService{repo: repo, settings: settings, accountID: accountUUID}, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]Invoice, error) {
	rows, err := s.repo.ListInvoices(ctx, s.accountID)
	if err != nil {
		return nil, domain.Internal(err, "invoice.list", "failed to list invoices")
	}
	invoices := make([]Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, invoiceFromRow(row))
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	invoiceID, err := scanUUID(id)
	if err != nil {
		return nil, domain.Invalid("invoice.get", "invalid invoice id")
	}
	row, err := s.repo.GetInvoice(ctx, repository.GetInvoiceParams{
		ID:        invoiceID,
		AccountID: s.accountID,
	})
	if err != nil {
		return nil, domain.NotFound("invoice.get", "invoice", id)
	}
	inv := invoiceFromRow(row)
	return &inv, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error) {
	if params.CustomerID == "" {
		return nil, domain.ErrInvoiceNoCustomer
	}
	customerID, err := scanUUID(params.CustomerID)
	if err != nil {
		return nil, domain.Invalid("invoice.create", "invalid customer id")
	}
	if _, err := s.repo.GetCustomer(ctx, repository.GetCustomerParams{
		ID:        customerID,
		AccountID: s.accountID,
	}); err != nil {
		return nil, domain.NotFound("invoice.create", "customer", params.CustomerID)
	}

	docType := params.Type
	if docType == "" {
		docType = domain.InvoiceTypeService
	}
	if !domain.ValidInvoiceType(docType) {
		return nil, domain.Invalid("invoice.create", "invalid invoice type")
	}

	items := invoice.Normalize(params.Items)
	if !invoice.HasBillableLine(items) {
		return nil, domain.ErrInvoiceNoItems
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, domain.Internal(err, "invoice.create", "failed to encode line items")
	}

	settings, err := s.settings.GetInvoiceSettings(ctx)
	if err != nil {
		return nil, err
	}
	taxCfg := invoice.TaxConfig{
		Enabled: settings.Tax.Enabled,
		Rate:    settings.Tax.Rate,
		Label:   settings.Tax.Label,
	}
	totals := invoice.Calculate(items, taxCfg)

	prefix := "INV-"
	status := domain.InvoiceStatusDraft
	if docType == domain.InvoiceTypeEstimate {
		prefix = "EST-"
		status = domain.InvoiceStatusEstimate
	}
	number := fmt.Sprintf("%s%d", prefix, time.Now().UnixMilli())

	due := time.Now().AddDate(0, 0, defaultDueDays)
	if params.DueDate != nil {
		due = *params.DueDate
	}

	taxRate := 0.0
	if taxCfg.Enabled {
		taxRate = taxCfg.Rate
	}

	row, err := s.repo.CreateInvoice(ctx, repository.CreateInvoiceParams{
		AccountID:     s.accountID,
		CustomerID:    customerID,
		InvoiceNumber: number,
		Type:          docType,
		Status:        status,
		Items:         itemsJSON,
		Subtotal:      totals.Subtotal,
		TaxRate:       taxRate,
		TaxAmount:     totals.Tax,
		Total:         totals.Total,
		Notes:         pgText(params.Notes),
		DueDate:       pgtype.Timestamptz{Time: due, Valid: true},
	})
	if err != nil {
		return nil, domain.Internal(err, "invoice.create", "failed to create invoice")
	}

	telemetry.RecordInvoiceCreated(docType)
	inv := invoiceFromRow(row)
	return &inv, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, params UpdateInvoiceParams) (*Invoice, error) {
	invoiceID, err := scanUUID(id)
	if err != nil {
		return nil, domain.Invalid("invoice.update", "invalid invoice id")
	}
	existing, err := s.repo.GetInvoice(ctx, repository.GetInvoiceParams{
		ID:        invoiceID,
		AccountID: s.accountID,
	})
	if err != nil {
		return nil, domain.NotFound("invoice.update", "invoice", id)
	}

	status := existing.Status
	if params.Status != "" {
		if !domain.ValidInvoiceStatus(params.Status) {
			return nil, domain.Invalid("invoice.update", "invalid invoice status")
		}
		status = params.Status
	}

	customerID := existing.CustomerID
	if params.CustomerID != "" {
		customerID, err = scanUUID(params.CustomerID)
		if err != nil {
			return nil, domain.Invalid("invoice.update", "invalid customer id")
		}
		if _, err := s.repo.GetCustomer(ctx, repository.GetCustomerParams{
			ID:        customerID,
			AccountID: s.accountID,
		}); err != nil {
			return nil, domain.NotFound("invoice.update", "customer", params.CustomerID)
		}
	}

	items := params.Items
	if items == nil {
		items = decodeItems(existing.Items)
	}
	items = invoice.Normalize(items)
	if !invoice.HasBillableLine(items) {
		return nil, domain.ErrInvoiceNoItems
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, domain.Internal(err, "invoice.update", "failed to encode line items")
	}

	// Totals are recomputed against the tax rate frozen at create time so
	// an edit never silently picks up a settings change.
	totals := invoice.Calculate(items, invoice.TaxConfig{
		Enabled: existing.TaxRate > 0,
		Rate:    existing.TaxRate,
	})

	notes := existing.Notes
	if params.Notes != nil {
		notes = pgText(*params.Notes)
	}
	due := existing.DueDate
	if params.DueDate != nil {
		due = pgtype.Timestamptz{Time: *params.DueDate, Valid: true}
	}

	row, err := s.repo.UpdateInvoice(ctx, repository.UpdateInvoiceParams{
		ID:         invoiceID,
		AccountID:  s.accountID,
		CustomerID: customerID,
		Status:     status,
		Items:      itemsJSON,
		Subtotal:   totals.Subtotal,
		TaxAmount:  totals.Tax,
		Total:      totals.Total,
		Notes:      notes,
		DueDate:    due,
	})
	if err != nil {
		return nil, domain.Internal(err, "invoice.update", "failed to update invoice")
	}
	inv := invoiceFromRow(row)
	return &inv, nil
}

func (s *invoiceService) MarkInvoicePaid(ctx context.Context, id string) (*Invoice, error) {
	invoiceID, err := scanUUID(id)
	if err != nil {
		return nil, domain.Invalid("invoice.pay", "invalid invoice id")
	}
	existing, err := s.repo.GetInvoice(ctx, repository.GetInvoiceParams{
		ID:        invoiceID,
		AccountID: s.accountID,
	})
	if err != nil {
		return nil, domain.NotFound("invoice.pay", "invoice", id)
	}
	if existing.Status == domain.InvoiceStatusPaid {
		return nil, domain.ErrInvoiceAlreadyPaid
	}

	row, err := s.repo.MarkInvoicePaid(ctx, repository.MarkInvoicePaidParams{
		ID:        invoiceID,
		AccountID: s.accountID,
	})
	if err != nil {
		return nil, domain.Internal(err, "invoice.pay", "failed to mark invoice paid")
	}

	telemetry.RecordInvoicePaid()
	inv := invoiceFromRow(row)
	return &inv, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	invoiceID, err := scanUUID(id)
	if err != nil {
		return domain.Invalid("invoice.delete", "invalid invoice id")
	}
	if err := s.repo.DeleteInvoice(ctx, repository.DeleteInvoiceParams{
		ID:        invoiceID,
		AccountID: s.accountID,
	}); err != nil {
		return domain.Internal(err, "invoice.delete", "failed to delete invoice")
	}
	return nil
}

func invoiceFromRow(row repository.Invoice) Invoice {
	return Invoice{
		ID:            uuidString(row.ID),
		CustomerID:    uuidString(row.CustomerID),
		InvoiceNumber: row.InvoiceNumber,
		Type:          row.Type,
		Status:        row.Status,
		Items:         decodeItems(row.Items),
		Subtotal:      row.Subtotal,
		TaxRate:       row.TaxRate,
		TaxAmount:     row.TaxAmount,
		Total:         row.Total,
		Notes:         textString(row.Notes),
		DueDate:       tsTime(row.DueDate),
		PaidDate:      tsTime(row.PaidDate),
		CreatedAt:     tsValue(row.CreatedAt),
		UpdatedAt:     tsValue(row.UpdatedAt),
	}
}

// decodeItems tolerates malformed stored items; a row with broken jsonb
// still lists, just with no lines.
func decodeItems(data []byte) []invoice.Item {
	if len(data) == 0 {
		return []invoice.Item{}
	}
	var items []invoice.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []invoice.Item{}
	}
	return items
}
