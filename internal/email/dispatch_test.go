package email

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/repository"
)

type fakeSender struct {
	sent      []*Email
	messageID string
	err       error
}

func (f *fakeSender) Send(ctx context.Context, email *Email) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, email)
	return f.messageID, nil
}

type fakeMessageStore struct {
	created []repository.CreateMessageParams
	err     error
}

func (f *fakeMessageStore) CreateMessage(ctx context.Context, arg repository.CreateMessageParams) (repository.Message, error) {
	if f.err != nil {
		return repository.Message{}, f.err
	}
	f.created = append(f.created, arg)
	return repository.Message{}, nil
}

func validRequest() *DispatchRequest {
	return &DispatchRequest{
		FromName:      "Acme Plumbing",
		ToEmail:       "pat@example.com",
		ToName:        "Pat Doe",
		Subject:       "Invoice INV-17",
		HTMLContent:   "<p>Please find your invoice.</p>",
		InvoiceID:     "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		CustomerID:    "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		UserID:        "6ba7b812-9dad-11d1-80b4-00c04fd430c8",
		InvoiceNumber: "INV-17",
		InvoiceStatus: "sent",
	}
}

func newTestDispatcher(t *testing.T, sender Sender, store MessageStore) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(sender, store,
		"00000000-0000-0000-0000-000000000001",
		"https://portal.example.com",
		"billing@acme.example.com",
		slog.Default(),
	)
	require.NoError(t, err)
	return d
}

func TestDispatch_Success(t *testing.T) {
	sender := &fakeSender{messageID: "msg-42"}
	store := &fakeMessageStore{}
	d := newTestDispatcher(t, sender, store)

	id, err := d.Dispatch(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "msg-42", id)

	require.Len(t, sender.sent, 1)
	sent := sender.sent[0]
	assert.Equal(t, []string{"Pat Doe <pat@example.com>"}, sent.To)
	assert.Equal(t, "Acme Plumbing <billing@acme.example.com>", sent.From)
	assert.True(t, strings.HasPrefix(sent.HTMLBody, "<p>Please find your invoice.</p>"))
	assert.Contains(t, sent.HTMLBody, "/track-email-open?")
	assert.NotEmpty(t, sent.TextBody)

	require.Len(t, store.created, 1)
	assert.Equal(t, "INV-17", store.created[0].InvoiceNumber)
	assert.Equal(t, "pat@example.com", store.created[0].RecipientEmail)
	assert.Equal(t, "sent", store.created[0].Status)
}

func TestDispatch_MissingFieldsListsAll(t *testing.T) {
	d := newTestDispatcher(t, &fakeSender{}, &fakeMessageStore{})

	req := validRequest()
	req.Subject = ""
	req.UserID = ""
	req.InvoiceNumber = ""

	_, err := d.Dispatch(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	msg := domain.ErrorMessage(err)
	assert.True(t, strings.HasPrefix(msg, "Missing required fields: "))
	assert.Contains(t, msg, "subject")
	assert.Contains(t, msg, "user_id")
	assert.Contains(t, msg, "invoice_number")
}

func TestDispatch_InvalidEmailFormat(t *testing.T) {
	d := newTestDispatcher(t, &fakeSender{}, &fakeMessageStore{})

	req := validRequest()
	req.ToEmail = "not-an-address"

	_, err := d.Dispatch(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Equal(t, "Invalid email format", domain.ErrorMessage(err))
}

func TestDispatch_ProviderFailure(t *testing.T) {
	providerErr := &ProviderError{Provider: "mailersend", StatusCode: 422, Message: "invalid sender domain"}
	sender := &fakeSender{err: providerErr}
	store := &fakeMessageStore{}
	d := newTestDispatcher(t, sender, store)

	_, err := d.Dispatch(context.Background(), validRequest())
	require.Error(t, err)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), "invalid sender domain")
	assert.Empty(t, store.created, "no message row on provider failure")
}

func TestDispatch_MessageRecordFailureDoesNotFailSend(t *testing.T) {
	sender := &fakeSender{messageID: "msg-1"}
	store := &fakeMessageStore{err: errors.New("db down")}
	d := newTestDispatcher(t, sender, store)

	id, err := d.Dispatch(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
}
