package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"
)

// MailerSendSender implements the Sender interface using the MailerSend API.
type MailerSendSender struct {
	apiToken string
	client   *http.Client
}

type mailersendRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailersendAttachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	Disposition string `json:"disposition"`
}

type mailersendEmail struct {
	From        mailersendRecipient    `json:"from"`
	To          []mailersendRecipient  `json:"to"`
	Subject     string                 `json:"subject"`
	HTML        string                 `json:"html,omitempty"`
	Text        string                 `json:"text,omitempty"`
	Attachments []mailersendAttachment `json:"attachments,omitempty"`
}

type mailersendError struct {
	Message string `json:"message"`
}

// NewMailerSendSender creates a new MailerSend email sender.
func NewMailerSendSender(apiToken string) *MailerSendSender {
	return &MailerSendSender{
		apiToken: apiToken,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Send sends an email via MailerSend.
func (m *MailerSendSender) Send(ctx context.Context, email *Email) (string, error) {
	fromEmail, fromName := splitAddress(email.From)

	payload := mailersendEmail{
		From:    mailersendRecipient{Email: fromEmail, Name: fromName},
		Subject: email.Subject,
		HTML:    email.HTMLBody,
		Text:    email.TextBody,
	}
	for _, to := range email.To {
		addr, name := splitAddress(to)
		payload.To = append(payload.To, mailersendRecipient{Email: addr, Name: name})
	}
	for _, att := range email.Attachments {
		payload.Attachments = append(payload.Attachments, mailersendAttachment{
			Filename:    att.Filename,
			Content:     base64.StdEncoding.EncodeToString(att.Content),
			Disposition: "attachment",
		})
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.mailersend.com/v1/email", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiToken)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: "mailersend", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		msg := string(body)
		var apiErr mailersendError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return "", &ProviderError{Provider: "mailersend", StatusCode: resp.StatusCode, Message: msg}
	}

	return resp.Header.Get("X-Message-Id"), nil
}

// splitAddress separates "Name <addr@example.com>" into its parts.
// A bare address comes back with an empty name.
func splitAddress(s string) (addr, name string) {
	parsed, err := mail.ParseAddress(s)
	if err != nil {
		return strings.TrimSpace(s), ""
	}
	return parsed.Address, parsed.Name
}
