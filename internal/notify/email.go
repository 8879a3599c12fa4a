package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("leaguedecks.notify")

type SmtpConfig struct {
	Server       string   `json:"server"`
	Port         int      `json:"port"`
	EmailAddress string   `json:"email_address"`
	Password     string   `json:"password"`
	Recipients   []string `json:"recipients"`
}

// Enabled reports whether enough is configured to send mail.
func (c SmtpConfig) Enabled() bool {
	return c.Server != "" && len(c.Recipients) > 0
}

type EmailNotifier struct {
	config SmtpConfig
}

func NewEmailNotifier(config SmtpConfig) EmailNotifier {
	return EmailNotifier{config: config}
}

func (n EmailNotifier) Notify(ctx context.Context, msg Message) error {
	_, span := tracer.Start(ctx, "email:notify")
	defer span.End()

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("League Decks <%s>", n.config.EmailAddress)
	mail.To = n.config.Recipients
	mail.Subject = msg.Subject()
	mail.Text = []byte(msg.Text())

	addr := fmt.Sprintf("%s:%d", n.config.Server, n.config.Port)
	err := mail.Send(addr, smtp.PlainAuth("", n.config.EmailAddress, n.config.Password, n.config.Server))
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
