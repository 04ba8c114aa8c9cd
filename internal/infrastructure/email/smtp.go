package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/config"
)

// SMTPEmailSender delivers transactional mail over SMTP. When the email
// subsystem is disabled it logs nothing and silently drops messages, which
// keeps local setups working without a mail server.
type SMTPEmailSender struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailSender(cfg config.EmailConfig) *SMTPEmailSender {
	return &SMTPEmailSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if !s.cfg.Enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
