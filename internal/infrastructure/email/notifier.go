package email

import (
	"context"
	"fmt"
	"net/smtp"

	"catalog-backend/pkg/logger"
)

// Notifier sends a best-effort notification. Callers fire it without
// retrying; a failed delivery is the caller's to log and swallow.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

type smtpNotifier struct {
	addr string
	from string
	to   string
}

// NewSMTPNotifier builds a notifier that delivers over plain SMTP, e.g. a
// local mailcatcher in development.
func NewSMTPNotifier(host, port, from, to string) Notifier {
	return &smtpNotifier{
		addr: host + ":" + port,
		from: from,
		to:   to,
	}
}

func (n *smtpNotifier) Notify(ctx context.Context, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s",
		n.from, n.to, subject, body))

	if err := smtp.SendMail(n.addr, nil, n.from, []string{n.to}, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

type logNotifier struct{}

// NewLogNotifier returns a notifier that only logs, for environments without
// an SMTP host.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(ctx context.Context, subject, body string) error {
	logger.Info("notification", map[string]interface{}{
		"subject": subject,
		"body":    body,
	})
	return nil
}
