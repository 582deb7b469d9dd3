// Package jobs defines the background job types and their processors.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/email"
	"github.com/crmrapid/portal/internal/money"
	"github.com/crmrapid/portal/internal/repository"
)

// JobTypeInvoiceReminder sends a due-soon reminder email for one invoice.
const JobTypeInvoiceReminder = "invoice_reminder"

// reminderWindowDays matches the dashboard's "due soon" window.
const reminderWindowDays = 7

// reminderMaxRetries bounds transient provider failures.
const reminderMaxRetries = 3

// InvoiceReminderPayload is the jsonb payload of an invoice_reminder job.
type InvoiceReminderPayload struct {
	InvoiceID     string    `json:"invoice_id"`
	CustomerID    string    `json:"customer_id"`
	InvoiceNumber string    `json:"invoice_number"`
	DueDate       time.Time `json:"due_date"`
}

// ReminderScheduler turns invoices due within the window into queued
// reminder jobs.
type ReminderScheduler struct {
	repo      repository.Querier
	accountID pgtype.UUID
	logger    *slog.Logger
}

// NewReminderScheduler creates a scheduler for the given account.
func NewReminderScheduler(repo repository.Querier, accountID string, logger *slog.Logger) (*ReminderScheduler, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	return &ReminderScheduler{repo: repo, accountID: accountUUID, logger: logger}, nil
}

// EnqueueDueSoonReminders queues one reminder job per invoice due within
// the window. A scan is skipped entirely while reminder jobs are still
// pending, which keeps repeated scans from stacking duplicates.
func (s *ReminderScheduler) EnqueueDueSoonReminders(ctx context.Context) (int, error) {
	pending, err := s.repo.CountPendingJobsOfType(ctx, JobTypeInvoiceReminder)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending reminders: %w", err)
	}
	if pending > 0 {
		return 0, nil
	}

	invoices, err := s.repo.ListInvoicesDueSoon(ctx, repository.ListInvoicesDueSoonParams{
		AccountID: s.accountID,
		Days:      reminderWindowDays,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list due-soon invoices: %w", err)
	}

	queued := 0
	for _, inv := range invoices {
		payload, err := json.Marshal(InvoiceReminderPayload{
			InvoiceID:     uuidString(inv.ID),
			CustomerID:    uuidString(inv.CustomerID),
			InvoiceNumber: inv.InvoiceNumber,
			DueDate:       inv.DueDate.Time,
		})
		if err != nil {
			return queued, fmt.Errorf("failed to encode reminder payload: %w", err)
		}

		if _, err := s.repo.EnqueueJob(ctx, repository.EnqueueJobParams{
			JobType:    JobTypeInvoiceReminder,
			Payload:    payload,
			MaxRetries: reminderMaxRetries,
			RunAt:      pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return queued, fmt.Errorf("failed to enqueue reminder for %s: %w", inv.InvoiceNumber, err)
		}
		queued++
	}

	if queued > 0 {
		s.logger.Info("queued invoice reminders", "count", queued)
	}
	return queued, nil
}

// ReminderProcessor sends the reminder email for one claimed job.
type ReminderProcessor struct {
	repo       repository.Querier
	dispatcher *email.Dispatcher
	accountID  pgtype.UUID
	userID     string
	logger     *slog.Logger
}

// NewReminderProcessor creates a processor for the given account.
func NewReminderProcessor(repo repository.Querier, dispatcher *email.Dispatcher, accountID string, logger *slog.Logger) (*ReminderProcessor, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	return &ReminderProcessor{
		repo:       repo,
		dispatcher: dispatcher,
		accountID:  accountUUID,
		userID:     accountID,
		logger:     logger,
	}, nil
}

// Process handles one invoice_reminder job. Invoices that were paid, voided,
// or deleted between scheduling and processing are skipped without error;
// a customer without an email address is also a skip, since retrying cannot
// fix it.
func (p *ReminderProcessor) Process(ctx context.Context, job *repository.Job) error {
	var payload InvoiceReminderPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("failed to decode reminder payload: %w", err)
	}

	var invoiceID pgtype.UUID
	if err := invoiceID.Scan(payload.InvoiceID); err != nil {
		return fmt.Errorf("invalid invoice id in payload: %w", err)
	}

	inv, err := p.repo.GetInvoice(ctx, repository.GetInvoiceParams{
		ID:        invoiceID,
		AccountID: p.accountID,
	})
	if err != nil {
		p.logger.Warn("reminder invoice no longer exists", "invoice_id", payload.InvoiceID)
		return nil
	}
	if inv.Status != domain.InvoiceStatusSent {
		return nil
	}

	customer, err := p.repo.GetCustomer(ctx, repository.GetCustomerParams{
		ID:        inv.CustomerID,
		AccountID: p.accountID,
	})
	if err != nil {
		p.logger.Warn("reminder customer no longer exists", "invoice_id", payload.InvoiceID)
		return nil
	}
	if !customer.Email.Valid || customer.Email.String == "" {
		p.logger.Warn("reminder skipped, customer has no email",
			"invoice_number", inv.InvoiceNumber,
			"customer_id", uuidString(customer.ID),
		)
		return nil
	}

	businessName := "Your service provider"
	if profile, err := p.repo.GetProfile(ctx, p.accountID); err == nil && profile.BusinessName != "" {
		businessName = profile.BusinessName
	}

	req := &email.DispatchRequest{
		FromName:      businessName,
		ToEmail:       customer.Email.String,
		ToName:        customer.Name,
		Subject:       fmt.Sprintf("Reminder: invoice %s is due soon", inv.InvoiceNumber),
		HTMLContent:   reminderHTML(businessName, customer.Name, inv),
		InvoiceID:     payload.InvoiceID,
		CustomerID:    uuidString(customer.ID),
		UserID:        p.userID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceStatus: inv.Status,
	}

	if _, err := p.dispatcher.Dispatch(ctx, req); err != nil {
		return fmt.Errorf("failed to send reminder for %s: %w", inv.InvoiceNumber, err)
	}
	return nil
}

func reminderHTML(businessName, customerName string, inv repository.Invoice) string {
	due := "soon"
	if inv.DueDate.Valid {
		due = inv.DueDate.Time.Format("January 2, 2006")
	}
	return fmt.Sprintf(`<html><body>
<p>Hi %s,</p>
<p>This is a friendly reminder from %s that invoice <strong>%s</strong>
for <strong>%s</strong> is due on %s.</p>
<p>If you have already sent payment, please disregard this message.</p>
<p>Thank you!</p>
</body></html>`,
		customerName, businessName, inv.InvoiceNumber, money.Format(inv.Total), due)
}

func uuidString(u pgtype.UUID) string {
	if !u.Valid {
		return ""
	}
	b := u.Bytes
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
