package email

import (
	"context"

	"github.com/draftmail/draftmail/internal/model"
)

// Sender is the interface that all mail-relay providers must implement.
// This abstraction allows swapping providers (Gmail, SMTP, etc.) without
// changing business logic.
type Sender interface {
	// Send relays an email to the specified recipient.
	Send(ctx context.Context, msg Message) error
}

// Message represents an email message to be relayed.
type Message struct {
	To       string // recipient email address
	Subject  string // email subject
	TextBody string // plain-text body
	// Attachment is relayed with its original filename and raw bytes, nil
	// when the message carries none.
	Attachment *model.Attachment
}
