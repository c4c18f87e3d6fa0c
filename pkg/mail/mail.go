package mail

import (
	"context"
)

//go:generate mockgen -source=mail.go -destination=mock/mail.go -package=mock_mail

// Message is one outbound email. Body is HTML.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a single message with at most one attempt. Implementations
// must not retry; the notification side-channel is fire-and-forget.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
