package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/repository"
	"github.com/crmrapid/portal/internal/retry"
	"github.com/crmrapid/portal/internal/storage"
)

// maxLogoBytes caps logo uploads at 2 MiB.
const maxLogoBytes = 2 << 20

// Profile is the API view of the business profile.
type Profile struct {
	BusinessName  string    `json:"business_name"`
	BusinessEmail string    `json:"business_email,omitempty"`
	BusinessType  string    `json:"business_type,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Website       string    `json:"website,omitempty"`
	LogoURL       string    `json:"logo_url,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpdateProfileParams are the mutable profile fields.
type UpdateProfileParams struct {
	BusinessName  string `json:"business_name"`
	BusinessEmail string `json:"business_email"`
	BusinessType  string `json:"business_type"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website"`
}

// ProfileService manages the business profile and its logo.
type ProfileService interface {
	GetProfile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*Profile, error)
	UploadLogo(ctx context.Context, filename, contentType string, data []byte) (string, error)
	BusinessContext(ctx context.Context) (*domain.BusinessContext, error)
}

type profileService struct {
	repo      repository.Querier
	settings  SettingsService
	files     storage.Storage
	accountID pgtype.UUID
	reads     retry.Policy
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(repo repository.Querier, settings SettingsService, files storage.Storage, accountID string) (ProfileService, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	return &profileService{
		repo:      repo,
		settings:  settings,
		files:     files,
		accountID: accountUUID,
		reads: retry.DefaultReads.WithClassifier(func(err error) bool {
			return !errors.Is(err, pgx.ErrNoRows)
		}),
	}, nil
}

// GetProfile returns the business profile. An account that has never saved
// one gets an empty profile, not an error.
func (s *profileService) GetProfile(ctx context.Context) (*Profile, error) {
	var row repository.Profile
	err := s.reads.Do(ctx, func(ctx context.Context) error {
		var readErr error
		row, readErr = s.repo.GetProfile(ctx, s.accountID)
		return readErr
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return &Profile{}, nil
	}
	if err != nil {
		return nil, domain.Internal(err, "profile.get", "failed to load business profile")
	}
	p := profileFromRow(row)
	return &p, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*Profile, error) {
	if strings.TrimSpace(params.BusinessName) == "" {
		return nil, domain.NewValidationError("profile.update", "business_name", "business name is required")
	}

	// Preserve the stored logo URL across profile saves; it only changes
	// through UploadLogo.
	logoURL := pgtype.Text{}
	if existing, err := s.repo.GetProfile(ctx, s.accountID); err == nil {
		logoURL = existing.LogoUrl
	}

	row, err := s.repo.UpsertProfile(ctx, repository.UpsertProfileParams{
		AccountID:     s.accountID,
		BusinessName:  strings.TrimSpace(params.BusinessName),
		BusinessEmail: pgText(params.BusinessEmail),
		BusinessType:  pgText(params.BusinessType),
		Phone:         pgText(params.Phone),
		Address:       pgText(params.Address),
		Website:       pgText(params.Website),
		LogoUrl:       logoURL,
	})
	if err != nil {
		return nil, domain.Internal(err, "profile.update", "failed to save business profile")
	}
	p := profileFromRow(row)
	return &p, nil
}

// UploadLogo stores the image and records its URL on the profile.
func (s *profileService) UploadLogo(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.Invalid("profile.logo", "logo file is empty")
	}
	if len(data) > maxLogoBytes {
		return "", domain.Invalid("profile.logo", "logo file exceeds 2MB limit")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", domain.Invalid("profile.logo", "logo must be an image")
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".png"
	}
	key := fmt.Sprintf("logos/%s%s", uuid.New().String(), ext)

	url, err := s.files.Put(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return "", domain.Internal(err, "profile.logo", "failed to store logo")
	}

	if _, err := s.repo.UpdateProfileLogo(ctx, repository.UpdateProfileLogoParams{
		AccountID: s.accountID,
		LogoUrl:   pgText(url),
	}); err != nil {
		return "", domain.Internal(err, "profile.logo", "failed to record logo URL")
	}
	return url, nil
}

// BusinessContext assembles the presentation context from the profile and
// invoice settings.
func (s *profileService) BusinessContext(ctx context.Context) (*domain.BusinessContext, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.GetInvoiceSettings(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.BusinessContext{
		BusinessName:   profile.BusinessName,
		BusinessEmail:  profile.BusinessEmail,
		Currency:       settings.Currency,
		CurrencySymbol: domain.CurrencySymbol(settings.Currency),
		LogoURL:        profile.LogoURL,
	}, nil
}

func profileFromRow(row repository.Profile) Profile {
	return Profile{
		BusinessName:  row.BusinessName,
		BusinessEmail: textString(row.BusinessEmail),
		BusinessType:  textString(row.BusinessType),
		Phone:         textString(row.Phone),
		Address:       textString(row.Address),
		Website:       textString(row.Website),
		LogoURL:       textString(row.LogoUrl),
		UpdatedAt:     tsValue(row.UpdatedAt),
	}
}
