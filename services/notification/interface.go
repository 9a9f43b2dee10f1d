package notification

import (
	"context"
	"fmt"

	"furaha/models"
)

// Email is a single outbound message.
type Email struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// EmailSender delivers a single email. Implementations can be swapped
// (SendGrid, SMTP, a test fake) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

// NotificationService defines the outbound emails the site sends. Every
// method is best-effort from the caller's point of view: callers log
// failures and move on, they never roll back state.
type NotificationService interface {
	SendAppointmentReceived(ctx context.Context, appt *models.Appointment) error
	SendAppointmentAlert(ctx context.Context, appt *models.Appointment) error
	SendStatusUpdate(ctx context.Context, appt *models.Appointment) error
	SendContactAlert(ctx context.Context, msg *models.ContactMessage) error
	SendDailyItinerary(ctx context.Context, appts []models.Appointment, summary string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Sender      EmailSender
	AdminEmail  string
	FrontendURL string
}

func NewDefaultNotificationService(sender EmailSender, adminEmail, frontendURL string) (*DefaultNotificationService, error) {
	if sender == nil {
		return nil, fmt.Errorf("notification service initialization error: sender is nil")
	}
	return &DefaultNotificationService{
		Sender:      sender,
		AdminEmail:  adminEmail,
		FrontendURL: frontendURL,
	}, nil
}
