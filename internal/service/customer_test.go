package service

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/repository"
)

func TestCreateCustomer(t *testing.T) {
	var captured repository.CreateCustomerParams
	repo := &fakeQuerier{
		createCustomer: func(ctx context.Context, arg repository.CreateCustomerParams) (repository.Customer, error) {
			captured = arg
			return repository.Customer{
				ID:             mustUUID("11111111-1111-1111-1111-111111111111"),
				AccountID:      arg.AccountID,
				CustomerNumber: arg.CustomerNumber,
				Name:           arg.Name,
				Email:          arg.Email,
			}, nil
		},
	}

	svc, err := NewCustomerService(repo, testAccountID)
	require.NoError(t, err)

	customer, err := svc.CreateCustomer(context.Background(), CreateCustomerParams{
		Name:  "  Jane Homeowner  ",
		Email: "jane@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Homeowner", customer.Name)
	assert.Equal(t, "jane@example.com", customer.Email)
	assert.True(t, strings.HasPrefix(customer.CustomerNumber, "CUS-"), "number = %s", customer.CustomerNumber)
	assert.Len(t, customer.CustomerNumber, len("CUS-")+8)
	assert.Equal(t, strings.ToUpper(captured.CustomerNumber), captured.CustomerNumber)
}

func TestCreateCustomer_NameRequired(t *testing.T) {
	svc, err := NewCustomerService(&fakeQuerier{}, testAccountID)
	require.NoError(t, err)

	_, err = svc.CreateCustomer(context.Background(), CreateCustomerParams{Name: "   "})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, domain.GetValidationFields(err), "name")
}

func TestDeleteCustomer_GuardsInvoices(t *testing.T) {
	tests := []struct {
		name         string
		invoiceCount int64
		wantCode     string
	}{
		{name: "no invoices deletes", invoiceCount: 0, wantCode: ""},
		{name: "invoices block delete", invoiceCount: 3, wantCode: domain.ECONFLICT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			repo := &fakeQuerier{
				countInvoicesForCustomer: func(ctx context.Context, customerID pgtype.UUID) (int64, error) {
					return tt.invoiceCount, nil
				},
				deleteCustomer: func(ctx context.Context, arg repository.DeleteCustomerParams) error {
					deleted = true
					return nil
				},
			}

			svc, err := NewCustomerService(repo, testAccountID)
			require.NoError(t, err)

			err = svc.DeleteCustomer(context.Background(), "22222222-2222-2222-2222-222222222222")
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.True(t, deleted)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
				assert.False(t, deleted)
			}
		})
	}
}

func TestGetCustomer_InvalidID(t *testing.T) {
	svc, err := NewCustomerService(&fakeQuerier{}, testAccountID)
	require.NoError(t, err)

	_, err = svc.GetCustomer(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}
