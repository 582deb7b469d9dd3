package service

import (
	"context"
	"io"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/repository"
)

const testAccountID = "00000000-0000-0000-0000-000000000001"

// fakeQuerier embeds the Querier interface so each test only implements the
// methods it expects to be called; anything else panics.
type fakeQuerier struct {
	repository.Querier

	createCustomer           func(ctx context.Context, arg repository.CreateCustomerParams) (repository.Customer, error)
	getCustomer              func(ctx context.Context, arg repository.GetCustomerParams) (repository.Customer, error)
	listCustomers            func(ctx context.Context, accountID pgtype.UUID) ([]repository.Customer, error)
	updateCustomer           func(ctx context.Context, arg repository.UpdateCustomerParams) (repository.Customer, error)
	deleteCustomer           func(ctx context.Context, arg repository.DeleteCustomerParams) error
	countInvoicesForCustomer func(ctx context.Context, customerID pgtype.UUID) (int64, error)

	createInvoice   func(ctx context.Context, arg repository.CreateInvoiceParams) (repository.Invoice, error)
	getInvoice      func(ctx context.Context, arg repository.GetInvoiceParams) (repository.Invoice, error)
	listInvoices    func(ctx context.Context, accountID pgtype.UUID) ([]repository.Invoice, error)
	updateInvoice   func(ctx context.Context, arg repository.UpdateInvoiceParams) (repository.Invoice, error)
	markInvoicePaid func(ctx context.Context, arg repository.MarkInvoicePaidParams) (repository.Invoice, error)
	deleteInvoice   func(ctx context.Context, arg repository.DeleteInvoiceParams) error

	getInvoiceSettings    func(ctx context.Context, accountID pgtype.UUID) (repository.InvoiceSetting, error)
	upsertInvoiceSettings func(ctx context.Context, arg repository.UpsertInvoiceSettingsParams) (repository.InvoiceSetting, error)

	getProfile        func(ctx context.Context, accountID pgtype.UUID) (repository.Profile, error)
	upsertProfile     func(ctx context.Context, arg repository.UpsertProfileParams) (repository.Profile, error)
	updateProfileLogo func(ctx context.Context, arg repository.UpdateProfileLogoParams) (repository.Profile, error)

	listInventoryItems      func(ctx context.Context, accountID pgtype.UUID) ([]repository.InventoryItem, error)
	createInventoryItem     func(ctx context.Context, arg repository.CreateInventoryItemParams) (repository.InventoryItem, error)
	createInventoryCategory func(ctx context.Context, arg repository.CreateInventoryCategoryParams) (repository.InventoryCategory, error)

	listMessagesWithOpenCounts func(ctx context.Context, accountID pgtype.UUID) ([]repository.ListMessagesWithOpenCountsRow, error)

	sumOutstandingInvoices func(ctx context.Context, accountID pgtype.UUID) (float64, error)
	countOverdueInvoices   func(ctx context.Context, accountID pgtype.UUID) (int64, error)
	countInvoicesDueSoon   func(ctx context.Context, arg repository.CountInvoicesDueSoonParams) (int64, error)
	sumPaidThisMonth       func(ctx context.Context, accountID pgtype.UUID) (float64, error)
}

func (f *fakeQuerier) CreateCustomer(ctx context.Context, arg repository.CreateCustomerParams) (repository.Customer, error) {
	return f.createCustomer(ctx, arg)
}

func (f *fakeQuerier) GetCustomer(ctx context.Context, arg repository.GetCustomerParams) (repository.Customer, error) {
	return f.getCustomer(ctx, arg)
}

func (f *fakeQuerier) ListCustomers(ctx context.Context, accountID pgtype.UUID) ([]repository.Customer, error) {
	return f.listCustomers(ctx, accountID)
}

func (f *fakeQuerier) UpdateCustomer(ctx context.Context, arg repository.UpdateCustomerParams) (repository.Customer, error) {
	return f.updateCustomer(ctx, arg)
}

func (f *fakeQuerier) DeleteCustomer(ctx context.Context, arg repository.DeleteCustomerParams) error {
	return f.deleteCustomer(ctx, arg)
}

func (f *fakeQuerier) CountInvoicesForCustomer(ctx context.Context, customerID pgtype.UUID) (int64, error) {
	return f.countInvoicesForCustomer(ctx, customerID)
}

func (f *fakeQuerier) CreateInvoice(ctx context.Context, arg repository.CreateInvoiceParams) (repository.Invoice, error) {
	return f.createInvoice(ctx, arg)
}

func (f *fakeQuerier) GetInvoice(ctx context.Context, arg repository.GetInvoiceParams) (repository.Invoice, error) {
	return f.getInvoice(ctx, arg)
}

func (f *fakeQuerier) ListInvoices(ctx context.Context, accountID pgtype.UUID) ([]repository.Invoice, error) {
	return f.listInvoices(ctx, accountID)
}

func (f *fakeQuerier) UpdateInvoice(ctx context.Context, arg repository.UpdateInvoiceParams) (repository.Invoice, error) {
	return f.updateInvoice(ctx, arg)
}

func (f *fakeQuerier) MarkInvoicePaid(ctx context.Context, arg repository.MarkInvoicePaidParams) (repository.Invoice, error) {
	return f.markInvoicePaid(ctx, arg)
}

func (f *fakeQuerier) DeleteInvoice(ctx context.Context, arg repository.DeleteInvoiceParams) error {
	return f.deleteInvoice(ctx, arg)
}

func (f *fakeQuerier) GetInvoiceSettings(ctx context.Context, accountID pgtype.UUID) (repository.InvoiceSetting, error) {
	return f.getInvoiceSettings(ctx, accountID)
}

func (f *fakeQuerier) UpsertInvoiceSettings(ctx context.Context, arg repository.UpsertInvoiceSettingsParams) (repository.InvoiceSetting, error) {
	return f.upsertInvoiceSettings(ctx, arg)
}

func (f *fakeQuerier) GetProfile(ctx context.Context, accountID pgtype.UUID) (repository.Profile, error) {
	return f.getProfile(ctx, accountID)
}

func (f *fakeQuerier) UpsertProfile(ctx context.Context, arg repository.UpsertProfileParams) (repository.Profile, error) {
	return f.upsertProfile(ctx, arg)
}

func (f *fakeQuerier) UpdateProfileLogo(ctx context.Context, arg repository.UpdateProfileLogoParams) (repository.Profile, error) {
	return f.updateProfileLogo(ctx, arg)
}

func (f *fakeQuerier) ListInventoryItems(ctx context.Context, accountID pgtype.UUID) ([]repository.InventoryItem, error) {
	return f.listInventoryItems(ctx, accountID)
}

func (f *fakeQuerier) CreateInventoryItem(ctx context.Context, arg repository.CreateInventoryItemParams) (repository.InventoryItem, error) {
	return f.createInventoryItem(ctx, arg)
}

func (f *fakeQuerier) CreateInventoryCategory(ctx context.Context, arg repository.CreateInventoryCategoryParams) (repository.InventoryCategory, error) {
	return f.createInventoryCategory(ctx, arg)
}

func (f *fakeQuerier) ListMessagesWithOpenCounts(ctx context.Context, accountID pgtype.UUID) ([]repository.ListMessagesWithOpenCountsRow, error) {
	return f.listMessagesWithOpenCounts(ctx, accountID)
}

func (f *fakeQuerier) SumOutstandingInvoices(ctx context.Context, accountID pgtype.UUID) (float64, error) {
	return f.sumOutstandingInvoices(ctx, accountID)
}

func (f *fakeQuerier) CountOverdueInvoices(ctx context.Context, accountID pgtype.UUID) (int64, error) {
	return f.countOverdueInvoices(ctx, accountID)
}

func (f *fakeQuerier) CountInvoicesDueSoon(ctx context.Context, arg repository.CountInvoicesDueSoonParams) (int64, error) {
	return f.countInvoicesDueSoon(ctx, arg)
}

func (f *fakeQuerier) SumPaidThisMonth(ctx context.Context, accountID pgtype.UUID) (float64, error) {
	return f.sumPaidThisMonth(ctx, accountID)
}

// fakeSettings returns fixed settings without touching storage.
type fakeSettings struct {
	settings InvoiceSettings
	err      error
}

func (f *fakeSettings) GetInvoiceSettings(ctx context.Context) (*InvoiceSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := f.settings
	return &s, nil
}

func (f *fakeSettings) UpdateInvoiceSettings(ctx context.Context, settings InvoiceSettings) (*InvoiceSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.settings = settings
	return &settings, nil
}

// fakeStorage records puts and returns a deterministic URL.
type fakeStorage struct {
	putKey  string
	putType string
	putErr  error
}

func (f *fakeStorage) Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	f.putKey = key
	f.putType = contentType
	return "/uploads/" + key, nil
}

func (f *fakeStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) { return nil, nil }
func (f *fakeStorage) Delete(ctx context.Context, key string) error               { return nil }
func (f *fakeStorage) URL(key string) string                                      { return "/uploads/" + key }
func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error)       { return false, nil }

func mustUUID(id string) pgtype.UUID {
	var u pgtype.UUID
	if err := u.Scan(id); err != nil {
		panic(err)
	}
	return u
}
