package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/repository"
)

// Message is one sent-email record with its open tracking summary.
// OpenCount counts tracking-pixel fetches, so it overstates true opens
// when a recipient reloads the email.
type Message struct {
	ID             string     `json:"id"`
	InvoiceID      string     `json:"invoice_id,omitempty"`
	InvoiceNumber  string     `json:"invoice_number"`
	RecipientEmail string     `json:"recipient_email"`
	RecipientName  string     `json:"recipient_name,omitempty"`
	Subject        string     `json:"subject,omitempty"`
	Status         string     `json:"status"`
	OpenCount      int64      `json:"open_count"`
	LastOpenedAt   *time.Time `json:"last_opened_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// MessageService reads the message inbox.
type MessageService interface {
	ListMessages(ctx context.Context) ([]Message, error)
}

type messageService struct {
	repo      repository.Querier
	accountID pgtype.UUID
}

// NewMessageService creates a new MessageService instance.
func NewMessageService(repo repository.Querier, accountID string) (MessageService, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	return &messageService{repo: repo, accountID: accountUUID}, nil
}

func (s *messageService) ListMessages(ctx context.Context) ([]Message, error) {
	rows, err := s.repo.ListMessagesWithOpenCounts(ctx, s.accountID)
	if err != nil {
		return nil, domain.Internal(err, "message.list", "failed to list messages")
	}
	messages := make([]Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, Message{
			ID:             uuidString(row.ID),
			InvoiceID:      uuidString(row.InvoiceID),
			InvoiceNumber:  row.InvoiceNumber,
			RecipientEmail: row.RecipientEmail,
			RecipientName:  textString(row.RecipientName),
			Subject:        textString(row.Subject),
			Status:         row.Status,
			OpenCount:      row.OpenCount,
			LastOpenedAt:   tsTime(row.LastOpenedAt),
			CreatedAt:      tsValue(row.CreatedAt),
		})
	}
	return messages, nil
}
