package scheduling

import (
	"context"
	"time"

	"furaha/models"
)

// SlotLabels is the fixed daily grid of bookable hourly slots, in order.
var SlotLabels = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

func isSlotLabel(label string) bool {
	for _, s := range SlotLabels {
		if s == label {
			return true
		}
	}
	return false
}

// dayBounds returns the inclusive start/end instants of the calendar day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// AvailableSlots returns the fixed label list minus the labels held by
// pending or confirmed appointments on the given date, order preserved.
// Cancelled appointments do not occupy a slot. A fully booked day yields an
// empty list, which callers must treat as "no availability" rather than an
// error. Nothing here guards against two concurrent submissions racing for
// the same label; booking is advisory at this layer.
func (s *DefaultSchedulingService) AvailableSlots(ctx context.Context, date string) (*models.SlotAvailability, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	start, end := dayBounds(day)
	existing, err := s.Repo.GetByDateAndStatuses(ctx, start, end,
		[]string{models.AppointmentPending, models.AppointmentConfirmed})
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(existing))
	bookedSlots := make([]string, 0, len(existing))
	for _, apt := range existing {
		if !booked[apt.PreferredTime] {
			bookedSlots = append(bookedSlots, apt.PreferredTime)
		}
		booked[apt.PreferredTime] = true
	}

	available := make([]string, 0, len(SlotLabels))
	for _, label := range SlotLabels {
		if !booked[label] {
			available = append(available, label)
		}
	}

	return &models.SlotAvailability{
		Date:           date,
		AvailableSlots: available,
		BookedSlots:    bookedSlots,
	}, nil
}

// TodaysConfirmed returns today's confirmed appointments sorted by time label.
func (s *DefaultSchedulingService) TodaysConfirmed(ctx context.Context) ([]models.Appointment, error) {
	return s.ConfirmedOnDay(ctx, s.now())
}

// ConfirmedOnDay returns the confirmed appointments on the given calendar day.
func (s *DefaultSchedulingService) ConfirmedOnDay(ctx context.Context, day time.Time) ([]models.Appointment, error) {
	start, end := dayBounds(day)
	return s.Repo.GetByDateAndStatuses(ctx, start, end, []string{models.AppointmentConfirmed})
}
