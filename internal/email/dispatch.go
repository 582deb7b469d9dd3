package email

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/repository"
	"github.com/crmrapid/portal/internal/telemetry"
)

// DispatchRequest is the contract for sending an invoice email. Every field
// is required; validation reports all missing fields at once.
type DispatchRequest struct {
	FromName      string `json:"from_name" validate:"required"`
	ToEmail       string `json:"to_email" validate:"required"`
	ToName        string `json:"to_name" validate:"required"`
	Subject       string `json:"subject" validate:"required"`
	HTMLContent   string `json:"html_content" validate:"required"`
	InvoiceID     string `json:"invoice_id" validate:"required"`
	CustomerID    string `json:"customer_id" validate:"required"`
	UserID        string `json:"user_id" validate:"required"`
	InvoiceNumber string `json:"invoice_number" validate:"required"`
	InvoiceStatus string `json:"invoice_status" validate:"required"`
}

// MessageStore is the slice of the repository the dispatcher records
// through after a successful send.
type MessageStore interface {
	CreateMessage(ctx context.Context, arg repository.CreateMessageParams) (repository.Message, error)
}

// Dispatcher validates invoice email requests, injects the open-tracking
// pixel, relays through the configured Sender, and records a message row
// best-effort after a successful send.
type Dispatcher struct {
	sender      Sender
	repo        MessageStore
	accountID   pgtype.UUID
	baseURL     string
	fromAddress string
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(sender Sender, repo MessageStore, accountID, baseURL, fromAddress string, logger *slog.Logger) (*Dispatcher, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}

	v := validator.New()
	// Report field names by their json tags so validation errors match the
	// wire contract.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Dispatcher{
		sender:      sender,
		repo:        repo,
		accountID:   accountUUID,
		baseURL:     strings.TrimRight(baseURL, "/"),
		fromAddress: fromAddress,
		validate:    v,
		logger:      logger,
	}, nil
}

// Validate checks the request without sending. Missing fields are collected
// into a single message listing every one; the recipient address must have
// a basic local@domain.tld shape.
func (d *Dispatcher) Validate(req *DispatchRequest) error {
	if err := d.validate.Struct(req); err != nil {
		var missing []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					missing = append(missing, fe.Field())
				}
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return domain.Invalid("email.dispatch", "Missing required fields: "+strings.Join(missing, ", "))
		}
		return domain.WrapError(err, domain.EINVALID, "email.dispatch", "invalid request")
	}

	if err := d.validate.Var(req.ToEmail, "email"); err != nil {
		return domain.Invalid("email.dispatch", "Invalid email format")
	}
	return nil
}

// Dispatch validates, sends, and records the message. The tracking pixel is
// appended to the HTML body before the provider call. A failed provider
// call surfaces as a ProviderError; a failed message insert after a
// successful send is logged and swallowed.
func (d *Dispatcher) Dispatch(ctx context.Context, req *DispatchRequest) (string, error) {
	if err := d.Validate(req); err != nil {
		return "", err
	}

	html := AppendTrackingPixel(req.HTMLContent, d.baseURL, req.InvoiceID, req.CustomerID)

	msg := &Email{
		To:       []string{fmt.Sprintf("%s <%s>", req.ToName, req.ToEmail)},
		From:     fmt.Sprintf("%s <%s>", req.FromName, d.fromAddress),
		Subject:  req.Subject,
		HTMLBody: html,
		TextBody: generatePlainText(html),
	}

	messageID, err := d.sender.Send(ctx, msg)
	if err != nil {
		return "", err
	}

	telemetry.RecordEmailSent()

	// Bookkeeping after a successful send is best-effort: the caller's
	// email already went out.
	var invoiceUUID pgtype.UUID
	if scanErr := invoiceUUID.Scan(req.InvoiceID); scanErr == nil {
		_, msgErr := d.repo.CreateMessage(ctx, repository.CreateMessageParams{
			AccountID:      d.accountID,
			InvoiceID:      invoiceUUID,
			InvoiceNumber:  req.InvoiceNumber,
			RecipientEmail: req.ToEmail,
			RecipientName:  pgtype.Text{String: req.ToName, Valid: true},
			Subject:        pgtype.Text{String: req.Subject, Valid: true},
			Status:         "sent",
		})
		if msgErr != nil {
			d.logger.Warn("email sent but message record failed",
				"invoice_id", req.InvoiceID,
				"error", msgErr,
			)
		}
	}

	return messageID, nil
}
