package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/email"
	"github.com/crmrapid/portal/internal/repository"
)

const (
	testAccountID  = "00000000-0000-0000-0000-000000000001"
	testInvoiceID  = "33333333-3333-3333-3333-333333333333"
	testCustomerID = "22222222-2222-2222-2222-222222222222"
)

func mustUUID(id string) pgtype.UUID {
	var u pgtype.UUID
	if err := u.Scan(id); err != nil {
		panic(err)
	}
	return u
}

// fakeQuerier implements only what the reminder path touches.
type fakeQuerier struct {
	repository.Querier

	pendingCount int64
	dueSoon      []repository.Invoice
	enqueued     []repository.EnqueueJobParams

	invoice  repository.Invoice
	customer repository.Customer
	profile  repository.Profile
}

func (f *fakeQuerier) CountPendingJobsOfType(ctx context.Context, jobType string) (int64, error) {
	return f.pendingCount, nil
}

func (f *fakeQuerier) ListInvoicesDueSoon(ctx context.Context, arg repository.ListInvoicesDueSoonParams) ([]repository.Invoice, error) {
	return f.dueSoon, nil
}

func (f *fakeQuerier) EnqueueJob(ctx context.Context, arg repository.EnqueueJobParams) (repository.Job, error) {
	f.enqueued = append(f.enqueued, arg)
	return repository.Job{JobType: arg.JobType, Payload: arg.Payload}, nil
}

func (f *fakeQuerier) GetInvoice(ctx context.Context, arg repository.GetInvoiceParams) (repository.Invoice, error) {
	return f.invoice, nil
}

func (f *fakeQuerier) GetCustomer(ctx context.Context, arg repository.GetCustomerParams) (repository.Customer, error) {
	return f.customer, nil
}

func (f *fakeQuerier) GetProfile(ctx context.Context, accountID pgtype.UUID) (repository.Profile, error) {
	return f.profile, nil
}

// fakeSender records the last sent email.
type fakeSender struct {
	sent *email.Email
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg *email.Email) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = msg
	return "msg-1", nil
}

// fakeMessageStore records dispatch bookkeeping rows.
type fakeMessageStore struct {
	created []repository.CreateMessageParams
}

func (f *fakeMessageStore) CreateMessage(ctx context.Context, arg repository.CreateMessageParams) (repository.Message, error) {
	f.created = append(f.created, arg)
	return repository.Message{}, nil
}

func TestEnqueueDueSoonReminders(t *testing.T) {
	repo := &fakeQuerier{
		dueSoon: []repository.Invoice{
			{
				ID:            mustUUID(testInvoiceID),
				CustomerID:    mustUUID(testCustomerID),
				InvoiceNumber: "INV-1700000000000",
				Status:        domain.InvoiceStatusSent,
				DueDate:       pgtype.Timestamptz{Time: time.Now().AddDate(0, 0, 3), Valid: true},
			},
		},
	}

	scheduler, err := NewReminderScheduler(repo, testAccountID, slog.Default())
	require.NoError(t, err)

	queued, err := scheduler.EnqueueDueSoonReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, queued)
	require.Len(t, repo.enqueued, 1)
	assert.Equal(t, JobTypeInvoiceReminder, repo.enqueued[0].JobType)

	var payload InvoiceReminderPayload
	require.NoError(t, json.Unmarshal(repo.enqueued[0].Payload, &payload))
	assert.Equal(t, testInvoiceID, payload.InvoiceID)
	assert.Equal(t, "INV-1700000000000", payload.InvoiceNumber)
}

func TestEnqueueDueSoonReminders_SkipsWhilePending(t *testing.T) {
	repo := &fakeQuerier{
		pendingCount: 2,
		dueSoon:      []repository.Invoice{{ID: mustUUID(testInvoiceID)}},
	}

	scheduler, err := NewReminderScheduler(repo, testAccountID, slog.Default())
	require.NoError(t, err)

	queued, err := scheduler.EnqueueDueSoonReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, queued)
	assert.Empty(t, repo.enqueued)
}

func reminderJob(t *testing.T) *repository.Job {
	t.Helper()
	payload, err := json.Marshal(InvoiceReminderPayload{
		InvoiceID:     testInvoiceID,
		CustomerID:    testCustomerID,
		InvoiceNumber: "INV-1700000000000",
		DueDate:       time.Now().AddDate(0, 0, 3),
	})
	require.NoError(t, err)
	return &repository.Job{JobType: JobTypeInvoiceReminder, Payload: payload}
}

func TestProcessReminder_SendsEmail(t *testing.T) {
	repo := &fakeQuerier{
		invoice: repository.Invoice{
			ID:            mustUUID(testInvoiceID),
			CustomerID:    mustUUID(testCustomerID),
			InvoiceNumber: "INV-1700000000000",
			Status:        domain.InvoiceStatusSent,
			Total:         225.78,
			DueDate:       pgtype.Timestamptz{Time: time.Now().AddDate(0, 0, 3), Valid: true},
		},
		customer: repository.Customer{
			ID:    mustUUID(testCustomerID),
			Name:  "Jane Homeowner",
			Email: pgtype.Text{String: "jane@example.com", Valid: true},
		},
		profile: repository.Profile{BusinessName: "Acme Plumbing"},
	}

	sender := &fakeSender{}
	dispatcher, err := email.NewDispatcher(sender, &fakeMessageStore{}, testAccountID,
		"https://portal.example.com", "noreply@portal.local", slog.Default())
	require.NoError(t, err)

	processor, err := NewReminderProcessor(repo, dispatcher, testAccountID, slog.Default())
	require.NoError(t, err)

	require.NoError(t, processor.Process(context.Background(), reminderJob(t)))

	require.NotNil(t, sender.sent)
	assert.Equal(t, "Reminder: invoice INV-1700000000000 is due soon", sender.sent.Subject)
	assert.Contains(t, sender.sent.To[0], "jane@example.com")
	assert.Contains(t, sender.sent.From, "Acme Plumbing")
	assert.Contains(t, sender.sent.HTMLBody, "track-email-open")
	assert.Contains(t, sender.sent.HTMLBody, "225.78")
}

func TestProcessReminder_SkipsPaidInvoice(t *testing.T) {
	repo := &fakeQuerier{
		invoice: repository.Invoice{
			ID:     mustUUID(testInvoiceID),
			Status: domain.InvoiceStatusPaid,
		},
	}

	sender := &fakeSender{}
	dispatcher, err := email.NewDispatcher(sender, &fakeMessageStore{}, testAccountID,
		"https://portal.example.com", "noreply@portal.local", slog.Default())
	require.NoError(t, err)

	processor, err := NewReminderProcessor(repo, dispatcher, testAccountID, slog.Default())
	require.NoError(t, err)

	require.NoError(t, processor.Process(context.Background(), reminderJob(t)))
	assert.Nil(t, sender.sent)
}

func TestProcessReminder_SkipsCustomerWithoutEmail(t *testing.T) {
	repo := &fakeQuerier{
		invoice: repository.Invoice{
			ID:         mustUUID(testInvoiceID),
			CustomerID: mustUUID(testCustomerID),
			Status:     domain.InvoiceStatusSent,
		},
		customer: repository.Customer{ID: mustUUID(testCustomerID), Name: "Jane"},
	}

	sender := &fakeSender{}
	dispatcher, err := email.NewDispatcher(sender, &fakeMessageStore{}, testAccountID,
		"https://portal.example.com", "noreply@portal.local", slog.Default())
	require.NoError(t, err)

	processor, err := NewReminderProcessor(repo, dispatcher, testAccountID, slog.Default())
	require.NoError(t, err)

	require.NoError(t, processor.Process(context.Background(), reminderJob(t)))
	assert.Nil(t, sender.sent)
}
