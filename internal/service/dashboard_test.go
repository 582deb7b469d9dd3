package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmrapid/portal/internal/repository"
)

func TestDashboardSummary(t *testing.T) {
	repo := &fakeQuerier{
		sumOutstandingInvoices: func(ctx context.Context, accountID pgtype.UUID) (float64, error) {
			return 1250.499, nil
		},
		countOverdueInvoices: func(ctx context.Context, accountID pgtype.UUID) (int64, error) {
			return 2, nil
		},
		countInvoicesDueSoon: func(ctx context.Context, arg repository.CountInvoicesDueSoonParams) (int64, error) {
			assert.Equal(t, int32(7), arg.Days)
			return 4, nil
		},
		sumPaidThisMonth: func(ctx context.Context, accountID pgtype.UUID) (float64, error) {
			return 980.004, nil
		},
	}

	svc, err := NewDashboardService(repo, testAccountID)
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1250.50, summary.OutstandingTotal)
	assert.Equal(t, int64(2), summary.OverdueCount)
	assert.Equal(t, int64(4), summary.DueSoonCount)
	assert.Equal(t, 980.00, summary.PaidThisMonth)
}
