package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/appointd/appointd/internal/infrastructure/config"
)

// Sender sends a single email message.
type Sender interface {
	Send(to, subject, body string) error
}

// Mailer implements Sender against a plain SMTP relay.
type Mailer struct {
	cfg config.MailConfig
}

// New creates a Mailer from the mail configuration.
func New(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one message synchronously. Callers that must not block
// should invoke it from a goroutine and log the returned error.
func (m *Mailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := buildMessage(m.cfg.From, to, subject, body)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}

// buildMessage assembles a minimal RFC 5322 message.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
