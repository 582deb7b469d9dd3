package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/repository"
	"github.com/crmrapid/portal/internal/retry"
)

// TaxSettings control how invoice totals are computed.
type TaxSettings struct {
	Enabled bool    `json:"enabled"`
	Rate    float64 `json:"rate"`
	Label   string  `json:"label"`
}

// InvoiceSettings is the per-account invoice settings document.
type InvoiceSettings struct {
	Tax      TaxSettings `json:"tax"`
	Currency string      `json:"currency"`
	Terms    string      `json:"terms"`
}

// defaultInvoiceSettings seeds a new account on first read.
var defaultInvoiceSettings = InvoiceSettings{
	Tax:      TaxSettings{Enabled: true, Rate: 10, Label: "Sales Tax"},
	Currency: "USD",
	Terms:    "Payment due within 30 days",
}

// SettingsService manages the invoice settings document.
type SettingsService interface {
	GetInvoiceSettings(ctx context.Context) (*InvoiceSettings, error)
	UpdateInvoiceSettings(ctx context.Context, settings InvoiceSettings) (*InvoiceSettings, error)
}

type settingsService struct {
	repo      repository.Querier
	accountID pgtype.UUID
	reads     retry.Policy
}

// NewSettingsService creates a new SettingsService instance.
func NewSettingsService(repo repository.Querier, accountID string) (SettingsService, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	return &settingsService{
		repo:      repo,
		accountID: accountUUID,
		// Missing rows are a definitive answer, not a transient failure.
		reads: retry.DefaultReads.WithClassifier(func(err error) bool {
			return !errors.Is(err, pgx.ErrNoRows)
		}),
	}, nil
}

// GetInvoiceSettings returns the account's settings, persisting the defaults
// the first time it is called.
func (s *settingsService) GetInvoiceSettings(ctx context.Context) (*InvoiceSettings, error) {
	var row repository.InvoiceSetting
	err := s.reads.Do(ctx, func(ctx context.Context) error {
		var readErr error
		row, readErr = s.repo.GetInvoiceSettings(ctx, s.accountID)
		return readErr
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return s.UpdateInvoiceSettings(ctx, defaultInvoiceSettings)
	}
	if err != nil {
		return nil, domain.Internal(err, "settings.get", "failed to load invoice settings")
	}
	settings := settingsFromRow(row)
	return &settings, nil
}

func (s *settingsService) UpdateInvoiceSettings(ctx context.Context, settings InvoiceSettings) (*InvoiceSettings, error) {
	if settings.Tax.Rate < 0 || settings.Tax.Rate > 100 {
		return nil, domain.NewValidationError("settings.update", "tax.rate", "tax rate must be between 0 and 100")
	}
	currency := strings.ToUpper(strings.TrimSpace(settings.Currency))
	if currency == "" {
		currency = defaultInvoiceSettings.Currency
	}
	label := strings.TrimSpace(settings.Tax.Label)
	if label == "" {
		label = defaultInvoiceSettings.Tax.Label
	}

	row, err := s.repo.UpsertInvoiceSettings(ctx, repository.UpsertInvoiceSettingsParams{
		AccountID:  s.accountID,
		TaxEnabled: settings.Tax.Enabled,
		TaxRate:    settings.Tax.Rate,
		TaxLabel:   label,
		Currency:   currency,
		Terms:      settings.Terms,
	})
	if err != nil {
		return nil, domain.Internal(err, "settings.update", "failed to save invoice settings")
	}
	saved := settingsFromRow(row)
	return &saved, nil
}

func settingsFromRow(row repository.InvoiceSetting) InvoiceSettings {
	return InvoiceSettings{
		Tax: TaxSettings{
			Enabled: row.TaxEnabled,
			Rate:    row.TaxRate,
			Label:   row.TaxLabel,
		},
		Currency: row.Currency,
		Terms:    row.Terms,
	}
}
