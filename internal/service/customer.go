package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/repository"
)

// Customer is the API view of a customer row.
type Customer struct {
	ID             string    `json:"id"`
	CustomerNumber string    `json:"customer_number"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateCustomerParams are the mutable fields accepted on create.
type CreateCustomerParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateCustomerParams are the mutable fields accepted on update.
type UpdateCustomerParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CustomerService manages the customer aggregate.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	CreateCustomer(ctx context.Context, params CreateCustomerParams) (*Customer, error)
	UpdateCustomer(ctx context.Context, id string, params UpdateCustomerParams) (*Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type customerService struct {
	repo      repository.Querier
	accountID pgtype.UUID
}

// NewCustomerService creates a new CustomerService instance.
func NewCustomerService(repo repository.Querier, accountID string) (CustomerService, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	return &customerService{repo: repo, accountID: accountUUID}, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := s.repo.ListCustomers(ctx, s.accountID)
	if err != nil {
		return nil, domain.Internal(err, "customer.list", "failed to list customers")
	}
	customers := make([]Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, customerFromRow(row))
	}
	return customers, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	customerID, err := scanUUID(id)
	if err != nil {
		return nil, domain.Invalid("customer.get", "invalid customer id")
	}
	row, err := s.repo.GetCustomer(ctx, repository.GetCustomerParams{
		ID:        customerID,
		AccountID: s.accountID,
	})
	if err != nil {
		return nil, domain.NotFound("customer.get", "customer", id)
	}
	c := customerFromRow(row)
	return &c, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, params CreateCustomerParams) (*Customer, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, domain.NewValidationError("customer.create", "name", "name is required")
	}

	row, err := s.repo.CreateCustomer(ctx, repository.CreateCustomerParams{
		AccountID:      s.accountID,
		CustomerNumber: newCustomerNumber(),
		Name:           strings.TrimSpace(params.Name),
		Email:          pgText(params.Email),
		Phone:          pgText(params.Phone),
		Address:        pgText(params.Address),
		Notes:          pgText(params.Notes),
	})
	if err != nil {
		return nil, domain.Internal(err, "customer.create", "failed to create customer")
	}
	c := customerFromRow(row)
	return &c, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, params UpdateCustomerParams) (*Customer, error) {
	customerID, err := scanUUID(id)
	if err != nil {
		return nil, domain.Invalid("customer.update", "invalid customer id")
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, domain.NewValidationError("customer.update", "name", "name is required")
	}

	row, err := s.repo.UpdateCustomer(ctx, repository.UpdateCustomerParams{
		ID:        customerID,
		AccountID: s.accountID,
		Name:      strings.TrimSpace(params.Name),
		Email:     pgText(params.Email),
		Phone:     pgText(params.Phone),
		Address:   pgText(params.Address),
		Notes:     pgText(params.Notes),
	})
	if err != nil {
		return nil, domain.NotFound("customer.update", "customer", id)
	}
	c := customerFromRow(row)
	return &c, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	customerID, err := scanUUID(id)
	if err != nil {
		return domain.Invalid("customer.delete", "invalid customer id")
	}

	// Refuse to orphan invoices. The UI offers no cascade, so neither do we.
	count, err := s.repo.CountInvoicesForCustomer(ctx, customerID)
	if err != nil {
		return domain.Internal(err, "customer.delete", "failed to check customer invoices")
	}
	if count > 0 {
		return domain.ErrCustomerHasInvoices
	}

	if err := s.repo.DeleteCustomer(ctx, repository.DeleteCustomerParams{
		ID:        customerID,
		AccountID: s.accountID,
	}); err != nil {
		return domain.Internal(err, "customer.delete", "failed to delete customer")
	}
	return nil
}

// newCustomerNumber generates a short human-readable customer number,
// e.g. CUS-3F2A91BC.
func newCustomerNumber() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "CUS-" + strings.ToUpper(hex[:8])
}

func customerFromRow(row repository.Customer) Customer {
	return Customer{
		ID:             uuidString(row.ID),
		CustomerNumber: row.CustomerNumber,
		Name:           row.Name,
		Email:          textString(row.Email),
		Phone:          textString(row.Phone),
		Address:        textString(row.Address),
		Notes:          textString(row.Notes),
		CreatedAt:      tsValue(row.CreatedAt),
		UpdatedAt:      tsValue(row.UpdatedAt),
	}
}
