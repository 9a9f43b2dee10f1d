package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarConfig holds the OAuth2 credentials for the calendar account.
type GoogleCalendarConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// GoogleCalendarService creates events on the admin's primary Google Calendar.
type GoogleCalendarService struct {
	svc *gcal.Service
}

// NewGoogleCalendarService builds a calendar client from a refresh token.
// Returns nil when credentials are not configured so the caller can skip
// calendar side effects entirely.
func NewGoogleCalendarService(ctx context.Context, cfg GoogleCalendarConfig) (*GoogleCalendarService, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, nil
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarEventsScope},
	}
	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := gcal.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleCalendarService{svc: svc}, nil
}

// CreateEvent inserts an event on the primary calendar and returns its ID.
// Attendees are invited and reminded by email a day ahead and by popup 30
// minutes ahead.
func (g *GoogleCalendarService) CreateEvent(ctx context.Context, event Event) (string, error) {
	attendees := make([]*gcal.EventAttendee, 0, len(event.AttendeeEmails))
	for _, email := range event.AttendeeEmails {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	ev := &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: event.TimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: event.TimeZone,
		},
		Attendees: attendees,
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := g.svc.Events.Insert("primary", ev).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}
