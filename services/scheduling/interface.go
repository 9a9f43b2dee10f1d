package scheduling

import (
	"context"
	"errors"
	"time"

	appointmentRepo "furaha/database/repository/appointment"
	"furaha/models"
	"furaha/services/calendar"
	"furaha/services/notification"
)

var (
	// ErrPastDate is returned when the requested date is not strictly in
	// the future.
	ErrPastDate = errors.New("appointment date must be in the future")
	// ErrUnknownSlot is returned when the requested time is not one of the
	// fixed slot labels.
	ErrUnknownSlot = errors.New("preferred time is not an available slot")
	// ErrInvalidStatus is returned when a status transition targets anything
	// other than confirmed or cancelled.
	ErrInvalidStatus = errors.New("status must be confirmed or cancelled")
	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// SchedulingService manages appointment requests, the daily slot grid and
// admin-driven status transitions.
type SchedulingService interface {
	Schedule(ctx context.Context, req models.ScheduleAppointmentRequest) (*models.Appointment, error)
	AvailableSlots(ctx context.Context, date string) (*models.SlotAvailability, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	// UpdateStatus persists the transition and then fires best-effort side
	// effects: a status email, and on confirmation a calendar event. Side
	// effect failures never reverse the persisted status.
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	TodaysConfirmed(ctx context.Context) ([]models.Appointment, error)
	ConfirmedOnDay(ctx context.Context, day time.Time) ([]models.Appointment, error)
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Repo     appointmentRepo.AppointmentRepository
	Notifier notification.NotificationService
	Calendar calendar.EventCreator // nil when calendar integration is not configured

	// Now is the clock used for future-date validation; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
