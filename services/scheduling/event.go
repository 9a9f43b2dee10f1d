package scheduling

import (
	"fmt"
	"time"

	"furaha/models"
	"furaha/services/calendar"
)

func calendarEvent(appt *models.Appointment, start time.Time, description string) calendar.Event {
	return calendar.Event{
		Summary:        fmt.Sprintf("Meeting with %s", appt.Name),
		Description:    description,
		Start:          start,
		End:            start.Add(eventDuration),
		TimeZone:       eventTimeZone,
		AttendeeEmails: []string{appt.Email},
	}
}
