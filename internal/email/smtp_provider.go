package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type smtpProvider struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPProvider returns a Provider that delivers through the configured
// SMTP relay.
func NewSMTPProvider(cfg SMTPConfig) Provider {
	return &smtpProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (p *smtpProvider) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.FromEmail, p.cfg.FromName))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}
