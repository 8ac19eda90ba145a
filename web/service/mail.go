package service

import (
	"fmt"

	"devfolio/config"
	"devfolio/logger"

	"gopkg.in/gomail.v2"
)

// MailService relays contact-form messages over authenticated SMTP
// submission (STARTTLS). Delivery is best effort: callers have already
// been answered by the time a relay attempt runs.
type MailService struct{}

// SendContactMail composes a plaintext message and relays it to the
// configured recipient. Errors are returned for logging only and never
// surface to the original caller.
func (s *MailService) SendContactMail(name string, email string, message string) error {
	host := config.GetSMTPHost()
	if host == "" {
		logger.Warning("contact mail skipped: SMTP_HOST not configured")
		return nil
	}

	recipient := config.GetContactRecipient()

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetSMTPUsername())
	m.SetHeader("To", recipient)
	m.SetHeader("Reply-To", email)
	m.SetHeader("Subject", fmt.Sprintf("Contact form message from %s", name))
	m.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", name, email, message))

	d := gomail.NewDialer(host, config.GetSMTPPort(), config.GetSMTPUsername(), config.GetSMTPPassword())
	return d.DialAndSend(m)
}

// SendContactMailAsync runs the relay attempt after the HTTP response has
// been sent. Failures are swallowed and only logged; there is no retry.
func (s *MailService) SendContactMailAsync(name string, email string, message string) {
	go func() {
		if err := s.SendContactMail(name, email, message); err != nil {
			logger.Warning("contact mail relay failed:", err)
		}
	}()
}
