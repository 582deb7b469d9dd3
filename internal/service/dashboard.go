package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/money"
	"github.com/crmrapid/portal/internal/repository"
)

// dueSoonDays is the window the dashboard (and the reminder job) call
// "due soon".
const dueSoonDays = 7

// DashboardSummary is the at-a-glance money view of the account.
type DashboardSummary struct {
	OutstandingTotal float64 `json:"outstanding_total"`
	OverdueCount     int64   `json:"overdue_count"`
	DueSoonCount     int64   `json:"due_soon_count"`
	PaidThisMonth    float64 `json:"paid_this_month"`
}

// DashboardService aggregates invoice figures for the dashboard.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	repo      repository.Querier
	accountID pgtype.UUID
}

// NewDashboardService creates a new DashboardService instance.
func NewDashboardService(repo repository.Querier, accountID string) (DashboardService, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	return &dashboardService{repo: repo, accountID: accountUUID}, nil
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	outstanding, err := s.repo.SumOutstandingInvoices(ctx, s.accountID)
	if err != nil {
		return nil, domain.Internal(err, "dashboard.summary", "failed to sum outstanding invoices")
	}
	overdue, err := s.repo.CountOverdueInvoices(ctx, s.accountID)
	if err != nil {
		return nil, domain.Internal(err, "dashboard.summary", "failed to count overdue invoices")
	}
	dueSoon, err := s.repo.CountInvoicesDueSoon(ctx, repository.CountInvoicesDueSoonParams{
		AccountID: s.accountID,
		Days:      dueSoonDays,
	})
	if err != nil {
		return nil, domain.Internal(err, "dashboard.summary", "failed to count due-soon invoices")
	}
	paid, err := s.repo.SumPaidThisMonth(ctx, s.accountID)
	if err != nil {
		return nil, domain.Internal(err, "dashboard.summary", "failed to sum paid invoices")
	}

	return &DashboardSummary{
		OutstandingTotal: money.Round2(outstanding),
		OverdueCount:     overdue,
		DueSoonCount:     dueSoon,
		PaidThisMonth:    money.Round2(paid),
	}, nil
}
