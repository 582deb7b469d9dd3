package api

import (
	"context"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/service"
)

// Per-interface fakes with function fields. A call on an unset field
// panics, which pins down exactly which service methods a handler uses.

type fakeCustomers struct {
	listFn   func(ctx context.Context) ([]service.Customer, error)
	getFn    func(ctx context.Context, id string) (*service.Customer, error)
	createFn func(ctx context.Context, params service.CreateCustomerParams) (*service.Customer, error)
	updateFn func(ctx context.Context, id string, params service.UpdateCustomerParams) (*service.Customer, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeCustomers) ListCustomers(ctx context.Context) ([]service.Customer, error) {
	return f.listFn(ctx)
}

func (f *fakeCustomers) GetCustomer(ctx context.Context, id string) (*service.Customer, error) {
	return f.getFn(ctx, id)
}

func (f *fakeCustomers) CreateCustomer(ctx context.Context, params service.CreateCustomerParams) (*service.Customer, error) {
	return f.createFn(ctx, params)
}

func (f *fakeCustomers) UpdateCustomer(ctx context.Context, id string, params service.UpdateCustomerParams) (*service.Customer, error) {
	return f.updateFn(ctx, id, params)
}

func (f *fakeCustomers) DeleteCustomer(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeInvoices struct {
	listFn     func(ctx context.Context) ([]service.Invoice, error)
	getFn      func(ctx context.Context, id string) (*service.Invoice, error)
	createFn   func(ctx context.Context, params service.CreateInvoiceParams) (*service.Invoice, error)
	updateFn   func(ctx context.Context, id string, params service.UpdateInvoiceParams) (*service.Invoice, error)
	markPaidFn func(ctx context.Context, id string) (*service.Invoice, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeInvoices) ListInvoices(ctx context.Context) ([]service.Invoice, error) {
	return f.listFn(ctx)
}

func (f *fakeInvoices) GetInvoice(ctx context.Context, id string) (*service.Invoice, error) {
	return f.getFn(ctx, id)
}

func (f *fakeInvoices) CreateInvoice(ctx context.Context, params service.CreateInvoiceParams) (*service.Invoice, error) {
	return f.createFn(ctx, params)
}

func (f *fakeInvoices) UpdateInvoice(ctx context.Context, id string, params service.UpdateInvoiceParams) (*service.Invoice, error) {
	return f.updateFn(ctx, id, params)
}

func (f *fakeInvoices) MarkInvoicePaid(ctx context.Context, id string) (*service.Invoice, error) {
	return f.markPaidFn(ctx, id)
}

func (f *fakeInvoices) DeleteInvoice(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeProfiles struct {
	getFn     func(ctx context.Context) (*service.Profile, error)
	updateFn  func(ctx context.Context, params service.UpdateProfileParams) (*service.Profile, error)
	uploadFn  func(ctx context.Context, filename, contentType string, data []byte) (string, error)
	contextFn func(ctx context.Context) (*domain.BusinessContext, error)
}

func (f *fakeProfiles) GetProfile(ctx context.Context) (*service.Profile, error) {
	return f.getFn(ctx)
}

func (f *fakeProfiles) UpdateProfile(ctx context.Context, params service.UpdateProfileParams) (*service.Profile, error) {
	return f.updateFn(ctx, params)
}

func (f *fakeProfiles) UploadLogo(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	return f.uploadFn(ctx, filename, contentType, data)
}

func (f *fakeProfiles) BusinessContext(ctx context.Context) (*domain.BusinessContext, error) {
	return f.contextFn(ctx)
}
