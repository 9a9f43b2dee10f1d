package notification

import (
	"context"
	"fmt"

	"furaha/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

// NewSendGridSender creates a new SendGrid email sender. Returns nil when no
// API key is configured so callers can fall back to the stub sender.
func NewSendGridSender(apiKey, from, fromName string) *SendGridSender {
	if apiKey == "" {
		return nil
	}
	return &SendGridSender{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
	}
}

func (s *SendGridSender) Send(ctx context.Context, email Email) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(email.ToName, email.To)
	message := mail.NewSingleEmail(from, email.Subject, to, email.HTML, email.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	utils.GetLogger().Info("email sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
	)
	return nil
}

// StubSender logs instead of sending. Used when email is not configured.
type StubSender struct{}

func (StubSender) Send(ctx context.Context, email Email) error {
	utils.GetLogger().Info("stub email sender: would send email",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
	)
	return nil
}
