package notification

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"roomify/config"
	"roomify/models"
)

// EmailSender delivers email notifications over SMTP.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailSender() *EmailSender {
	cfg := config.AppConfig
	return &EmailSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (s *EmailSender) Send(msg models.NotificationMessage) error {
	if msg.To == "" {
		return fmt.Errorf("email notification without recipient")
	}

	body, err := renderTemplate(msg.Template, msg.Metadata)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	return nil
}
