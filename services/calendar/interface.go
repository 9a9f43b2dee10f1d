package calendar

import (
	"context"
	"time"
)

// Event describes a calendar event to create.
type Event struct {
	Summary        string
	Description    string
	Start          time.Time
	End            time.Time
	TimeZone       string
	AttendeeEmails []string
}

// EventCreator creates an event on an external calendar and returns its
// external identity.
type EventCreator interface {
	CreateEvent(ctx context.Context, event Event) (string, error)
}
