package email

import (
	"context"

	"torami_backend/internal/logger"
)

type noopProvider struct{}

// NewNoopProvider returns a Provider that only logs. Used when outbound mail
// is disabled in config and in tests.
func NewNoopProvider() Provider {
	return &noopProvider{}
}

func (p *noopProvider) Send(ctx context.Context, msg Message) error {
	logger.FromContext(ctx).Debug("email suppressed (noop provider)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
