package email

import "context"

// Message is an outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Provider sends outbound mail. Delivery failures must not fail the calling
// business operation; callers log and continue.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}
