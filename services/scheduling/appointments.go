package scheduling

import (
	"context"
	"time"

	"furaha/models"
	"furaha/utils"

	"go.uber.org/zap"
)

// eventTimeZone is the fixed zone calendar events are created in.
const eventTimeZone = "America/New_York"

// eventDuration is the fixed length of a confirmed meeting.
const eventDuration = time.Hour

// Schedule validates and persists a new pending appointment, then sends the
// confirmation and admin-alert emails best-effort.
func (s *DefaultSchedulingService) Schedule(ctx context.Context, req models.ScheduleAppointmentRequest) (*models.Appointment, error) {
	day, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	// Strictly future: the requested day's midnight must be ahead of now,
	// so booking for later today is rejected too.
	if !day.After(s.now()) {
		return nil, ErrPastDate
	}
	if !isSlotLabel(req.PreferredTime) {
		return nil, ErrUnknownSlot
	}

	appt := &models.Appointment{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: day,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		Status:        models.AppointmentPending,
	}
	if _, err := s.Repo.Create(ctx, appt); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	if err := s.Notifier.SendAppointmentReceived(ctx, appt); err != nil {
		logger.Warn("failed to send confirmation email", zap.String("appointment", appt.ID), zap.Error(err))
	}
	if err := s.Notifier.SendAppointmentAlert(ctx, appt); err != nil {
		logger.Warn("failed to send admin notification", zap.String("appointment", appt.ID), zap.Error(err))
	}

	return appt, nil
}

// ListAppointments returns every appointment, newest first.
func (s *DefaultSchedulingService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.GetAll(ctx)
}

// UpdateStatus applies an admin-driven transition. The persisted status is
// authoritative: the status email and, on confirmation, the calendar event
// are best-effort and their failure is logged and swallowed.
func (s *DefaultSchedulingService) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	if status != models.AppointmentConfirmed && status != models.AppointmentCancelled {
		return nil, ErrInvalidStatus
	}

	// Load first so a missing appointment is reported before anything is
	// written.
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	appt, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	if err := s.Notifier.SendStatusUpdate(ctx, appt); err != nil {
		logger.Warn("failed to send status update email", zap.String("appointment", appt.ID), zap.Error(err))
	}

	if status == models.AppointmentConfirmed {
		s.createCalendarEvent(ctx, appt)
	}

	return appt, nil
}

// createCalendarEvent books a one-hour event for a confirmed appointment and
// stores the returned event identity. Any failure is logged, never surfaced.
func (s *DefaultSchedulingService) createCalendarEvent(ctx context.Context, appt *models.Appointment) {
	if s.Calendar == nil {
		return
	}
	logger := utils.GetLogger()

	hour, minute, err := parseSlotLabel(appt.PreferredTime)
	if err != nil {
		logger.Warn("failed to parse appointment time", zap.String("appointment", appt.ID), zap.Error(err))
		return
	}

	loc, err := time.LoadLocation(eventTimeZone)
	if err != nil {
		logger.Warn("failed to load event time zone", zap.Error(err))
		return
	}
	start := time.Date(appt.PreferredDate.Year(), appt.PreferredDate.Month(), appt.PreferredDate.Day(),
		hour, minute, 0, 0, loc)

	description := appt.Message
	if description == "" {
		description = "Design consultation meeting"
	}

	eventID, err := s.Calendar.CreateEvent(ctx, calendarEvent(appt, start, description))
	if err != nil {
		logger.Warn("failed to create calendar event", zap.String("appointment", appt.ID), zap.Error(err))
		return
	}

	if err := s.Repo.SetCalendarEventID(ctx, appt.ID, eventID); err != nil {
		logger.Warn("failed to store calendar event id", zap.String("appointment", appt.ID), zap.Error(err))
		return
	}
	appt.CalendarEventID = eventID
}
