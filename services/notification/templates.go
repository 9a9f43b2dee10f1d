package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"furaha/models"
)

// SendAppointmentReceived confirms receipt of a scheduling request to the requester.
func (s *DefaultNotificationService) SendAppointmentReceived(ctx context.Context, appt *models.Appointment) error {
	var sb strings.Builder
	sb.WriteString("<h2>Thank you for your appointment request!</h2>")
	fmt.Fprintf(&sb, "<p>Hi %s,</p>", appt.Name)
	sb.WriteString("<p>I've received your appointment request with the following details:</p><ul>")
	fmt.Fprintf(&sb, "<li><strong>Date:</strong> %s</li>", appt.PreferredDate.Format("January 2, 2006"))
	fmt.Fprintf(&sb, "<li><strong>Time:</strong> %s</li>", appt.PreferredTime)
	if appt.Message != "" {
		fmt.Fprintf(&sb, "<li><strong>Message:</strong> %s</li>", appt.Message)
	}
	sb.WriteString("</ul>")
	sb.WriteString("<p>I'll review your request and get back to you within 24 hours to confirm the appointment.</p>")
	sb.WriteString("<p>Best regards,<br>Uwize Furaha</p>")

	return s.Sender.Send(ctx, Email{
		To:      appt.Email,
		ToName:  appt.Name,
		Subject: "Appointment Request Received - Uwize Furaha",
		HTML:    sb.String(),
	})
}

// SendAppointmentAlert notifies the admin of a new scheduling request.
func (s *DefaultNotificationService) SendAppointmentAlert(ctx context.Context, appt *models.Appointment) error {
	var sb strings.Builder
	sb.WriteString("<h2>New Appointment Request</h2>")
	fmt.Fprintf(&sb, "<p><strong>Name:</strong> %s</p>", appt.Name)
	fmt.Fprintf(&sb, "<p><strong>Email:</strong> %s</p>", appt.Email)
	if appt.Phone != "" {
		fmt.Fprintf(&sb, "<p><strong>Phone:</strong> %s</p>", appt.Phone)
	}
	fmt.Fprintf(&sb, "<p><strong>Preferred Date:</strong> %s</p>", appt.PreferredDate.Format("January 2, 2006"))
	fmt.Fprintf(&sb, "<p><strong>Preferred Time:</strong> %s</p>", appt.PreferredTime)
	if appt.Message != "" {
		fmt.Fprintf(&sb, "<p><strong>Message:</strong> %s</p>", appt.Message)
	}
	fmt.Fprintf(&sb, "<p><strong>Requested:</strong> %s</p>", time.Now().Format(time.RFC1123))
	fmt.Fprintf(&sb, `<p><a href="%s/admin/appointments">View in Admin Dashboard</a></p>`, s.FrontendURL)

	return s.Sender.Send(ctx, Email{
		To:      s.AdminEmail,
		Subject: fmt.Sprintf("New Appointment Request from %s", appt.Name),
		HTML:    sb.String(),
	})
}

// SendStatusUpdate tells the requester their appointment was confirmed or cancelled.
func (s *DefaultNotificationService) SendStatusUpdate(ctx context.Context, appt *models.Appointment) error {
	var headline string
	switch appt.Status {
	case models.AppointmentConfirmed:
		headline = "Your appointment has been confirmed!"
	case models.AppointmentCancelled:
		headline = "Your appointment has been cancelled."
	default:
		headline = "Your appointment status has been updated."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<h2>%s</h2>", headline)
	fmt.Fprintf(&sb, "<p>Hi %s,</p>", appt.Name)
	fmt.Fprintf(&sb, "<p>Your appointment scheduled for %s at %s has been <strong>%s</strong>.</p>",
		appt.PreferredDate.Format("January 2, 2006"), appt.PreferredTime, appt.Status)
	switch appt.Status {
	case models.AppointmentConfirmed:
		sb.WriteString("<p>I look forward to meeting with you! If you need to reschedule or have any questions, please don't hesitate to reach out.</p>")
	case models.AppointmentCancelled:
		sb.WriteString("<p>If you'd like to reschedule, please feel free to submit a new appointment request.</p>")
	}
	sb.WriteString("<p>Best regards,<br>Uwize Furaha</p>")

	return s.Sender.Send(ctx, Email{
		To:      appt.Email,
		ToName:  appt.Name,
		Subject: fmt.Sprintf("Appointment %s - Uwize Furaha", capitalize(appt.Status)),
		HTML:    sb.String(),
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SendContactAlert notifies the admin of a new contact message.
func (s *DefaultNotificationService) SendContactAlert(ctx context.Context, msg *models.ContactMessage) error {
	var sb strings.Builder
	sb.WriteString("<h2>New Contact Message</h2>")
	fmt.Fprintf(&sb, "<p><strong>Name:</strong> %s</p>", msg.Name)
	fmt.Fprintf(&sb, "<p><strong>Email:</strong> %s</p>", msg.Email)
	sb.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&sb, "<p>%s</p>", strings.ReplaceAll(msg.Message, "\n", "<br>"))
	fmt.Fprintf(&sb, "<p><strong>Received:</strong> %s</p>", time.Now().Format(time.RFC1123))

	return s.Sender.Send(ctx, Email{
		To:      s.AdminEmail,
		Subject: fmt.Sprintf("New Contact Message from %s", msg.Name),
		HTML:    sb.String(),
	})
}

// SendDailyItinerary emails the admin the day's confirmed appointments plus
// the generated summary.
func (s *DefaultNotificationService) SendDailyItinerary(ctx context.Context, appts []models.Appointment, summary string) error {
	if len(appts) == 0 {
		return nil
	}
	today := time.Now().Format("January 2, 2006")

	var sb strings.Builder
	fmt.Fprintf(&sb, "<h2>Your Appointments for %s</h2>", today)
	fmt.Fprintf(&sb, "<p>You have %d appointment(s) scheduled:</p>", len(appts))
	for _, apt := range appts {
		msg := apt.Message
		if msg == "" {
			msg = "No message provided"
		}
		fmt.Fprintf(&sb, `<div style="margin-bottom: 15px; padding: 10px; border-left: 3px solid #ff6f61;">
			<strong>%s</strong> (%s)<br>
			<strong>Time:</strong> %s<br>
			<strong>Message:</strong> %s<br>
			<strong>Status:</strong> %s
		</div>`, apt.Name, apt.Email, apt.PreferredTime, msg, apt.Status)
	}
	if summary != "" {
		fmt.Fprintf(&sb, "<p>%s</p>", summary)
	}
	sb.WriteString("<p>Have a great day!</p>")

	return s.Sender.Send(ctx, Email{
		To:      s.AdminEmail,
		Subject: fmt.Sprintf("Daily Itinerary - %s", today),
		HTML:    sb.String(),
	})
}
