// Package mail sends transactional email over SMTP.
package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/Raghavendrawissen/splitapp-client/internal/config"
)

// Service sends mail through the configured SMTP relay.
type Service struct {
	dialer *gomail.Dialer
	from   string
}

// NewService creates a mail service from the SMTP configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// SendPasswordResetMail emails a single-use password reset link.
func (m *Service) SendPasswordResetMail(to, link string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", "Reset your password")
	message.SetBody("text/html", `
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px;">
			<h2 style="color: #333;">Reset your password</h2>
			<p>We received a request to reset the password for your account.</p>
			<p><a href="`+link+`" style="display: inline-block; padding: 10px 20px; background-color: #007bff; color: #fff; text-decoration: none; border-radius: 5px;">Choose a new password</a></p>
			<p>The link expires in one hour. If you didn't request this, you can ignore this email.</p>
		</div>
	`)
	return m.dialer.DialAndSend(message)
}
