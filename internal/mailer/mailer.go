// Package mailer is the outbound email collaborator. Delivery is
// best-effort by policy: callers log a failed Send and move on, so a lost
// OTP or receipt is invisible to the recipient.
package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/costeam/cos-backend/config"
)

type Notifier interface {
	Send(subject, htmlBody, recipient string) error
}

type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(cfg *config.SMTPConfig) *SMTPNotifier {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
	}
}

func (n *SMTPNotifier) Send(subject, htmlBody, recipient string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return n.dialer.DialAndSend(m)
}
