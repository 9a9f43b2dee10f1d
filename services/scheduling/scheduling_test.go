package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	appointmentRepo "furaha/database/repository/appointment"
	"furaha/models"
	"furaha/services/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository.
type fakeAppointmentRepo struct {
	appts       []*models.Appointment
	createErr   error
	getByIDs    int
	statusWrite int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *models.Appointment) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if appt.ID == "" {
		appt.ID = fmt.Sprintf("appt-%d", len(f.appts)+1)
	}
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	stored := *appt
	f.appts = append(f.appts, &stored)
	return appt.ID, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	f.getByIDs++
	for _, a := range f.appts {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) GetAll(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.appts))
	for i := len(f.appts) - 1; i >= 0; i-- {
		out = append(out, *f.appts[i])
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByDateAndStatuses(_ context.Context, dayStart, dayEnd time.Time, statuses []string) ([]models.Appointment, error) {
	wanted := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PreferredDate.Before(dayStart) || a.PreferredDate.After(dayEnd) {
			continue
		}
		if wanted[a.Status] {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id, status string) (*models.Appointment, error) {
	f.statusWrite++
	for _, a := range f.appts {
		if a.ID == id {
			a.Status = status
			a.UpdatedAt = time.Now()
			copied := *a
			return &copied, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) SetCalendarEventID(_ context.Context, id, eventID string) error {
	for _, a := range f.appts {
		if a.ID == id {
			a.CalendarEventID = eventID
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

// fakeNotifier counts outbound emails and can be told to fail.
type fakeNotifier struct {
	received    int
	alerts      int
	statuses    int
	contacts    int
	itineraries int
	err         error
}

func (f *fakeNotifier) SendAppointmentReceived(_ context.Context, _ *models.Appointment) error {
	f.received++
	return f.err
}

func (f *fakeNotifier) SendAppointmentAlert(_ context.Context, _ *models.Appointment) error {
	f.alerts++
	return f.err
}

func (f *fakeNotifier) SendStatusUpdate(_ context.Context, _ *models.Appointment) error {
	f.statuses++
	return f.err
}

func (f *fakeNotifier) SendContactAlert(_ context.Context, _ *models.ContactMessage) error {
	f.contacts++
	return f.err
}

func (f *fakeNotifier) SendDailyItinerary(_ context.Context, _ []models.Appointment, _ string) error {
	f.itineraries++
	return f.err
}

// fakeCalendar records created events and can be told to fail.
type fakeCalendar struct {
	events []calendar.Event
	err    error
}

func (f *fakeCalendar) CreateEvent(_ context.Context, event calendar.Event) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.events = append(f.events, event)
	return fmt.Sprintf("evt-%d", len(f.events)), nil
}

func newTestService(repo *fakeAppointmentRepo, notifier *fakeNotifier, cal *fakeCalendar) *DefaultSchedulingService {
	svc := &DefaultSchedulingService{
		Repo:     repo,
		Notifier: notifier,
		Now: func() time.Time {
			return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		},
	}
	if cal != nil {
		svc.Calendar = cal
	}
	return svc
}

func seedAppointment(repo *fakeAppointmentRepo, date, slot, status string) *models.Appointment {
	day, _ := time.Parse("2006-01-02", date)
	appt := &models.Appointment{
		Name:          "Test Client",
		Email:         "client@example.com",
		PreferredDate: day,
		PreferredTime: slot,
		Status:        status,
	}
	_, _ = repo.Create(context.Background(), appt)
	return appt
}

func TestAvailableSlots_EmptyDay(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeNotifier{}, nil)

	avail, err := svc.AvailableSlots(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, SlotLabels, avail.AvailableSlots)
	assert.Empty(t, avail.BookedSlots)
	assert.Equal(t, "2026-09-10", avail.Date)
}

func TestAvailableSlots_InvalidDate(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeNotifier{}, nil)

	_, err := svc.AvailableSlots(context.Background(), "10/09/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAvailableSlots_FullyBooked(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	for _, label := range SlotLabels {
		seedAppointment(repo, "2026-09-10", label, models.AppointmentPending)
	}
	svc := newTestService(repo, &fakeNotifier{}, nil)

	avail, err := svc.AvailableSlots(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Empty(t, avail.AvailableSlots)
	assert.Len(t, avail.BookedSlots, len(SlotLabels))
}

func TestAvailableSlots_CancelledDoesNotOccupy(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	seedAppointment(repo, "2026-09-10", "9:00 AM", models.AppointmentCancelled)
	seedAppointment(repo, "2026-09-10", "2:00 PM", models.AppointmentConfirmed)
	svc := newTestService(repo, &fakeNotifier{}, nil)

	avail, err := svc.AvailableSlots(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Contains(t, avail.AvailableSlots, "9:00 AM")
	assert.NotContains(t, avail.AvailableSlots, "2:00 PM")
	assert.Equal(t, []string{"2:00 PM"}, avail.BookedSlots)
}

func TestAvailableSlots_OtherDaysIgnored(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	seedAppointment(repo, "2026-09-09", "9:00 AM", models.AppointmentPending)
	seedAppointment(repo, "2026-09-11", "10:00 AM", models.AppointmentConfirmed)
	svc := newTestService(repo, &fakeNotifier{}, nil)

	avail, err := svc.AvailableSlots(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, SlotLabels, avail.AvailableSlots)
}

func TestSchedule(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, nil)

	appt, err := svc.Schedule(context.Background(), models.ScheduleAppointmentRequest{
		Name:          "Amina Okafor",
		Email:         "amina@example.com",
		PreferredDate: "2026-09-10",
		PreferredTime: "10:00 AM",
		Message:       "Brand refresh project",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, 1, notifier.received)
	assert.Equal(t, 1, notifier.alerts)

	stored, err := repo.GetByID(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, stored.Status)
}

func TestSchedule_CancelledSlotCanBeRebooked(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	seedAppointment(repo, "2026-09-10", "10:00 AM", models.AppointmentCancelled)
	svc := newTestService(repo, &fakeNotifier{}, nil)

	appt, err := svc.Schedule(context.Background(), models.ScheduleAppointmentRequest{
		Name:          "Ben Carter",
		Email:         "ben@example.com",
		PreferredDate: "2026-09-10",
		PreferredTime: "10:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appt.Status)
}

func TestSchedule_SameDayRejected(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeNotifier{}, nil)

	_, err := svc.Schedule(context.Background(), models.ScheduleAppointmentRequest{
		Name:          "Amina Okafor",
		Email:         "amina@example.com",
		PreferredDate: "2026-09-01",
		PreferredTime: "10:00 AM",
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestSchedule_PastDate(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, &fakeNotifier{}, nil)

	_, err := svc.Schedule(context.Background(), models.ScheduleAppointmentRequest{
		Name:          "Amina Okafor",
		Email:         "amina@example.com",
		PreferredDate: "2026-08-20",
		PreferredTime: "10:00 AM",
	})
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, repo.appts)
}

func TestSchedule_UnknownSlot(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeNotifier{}, nil)

	_, err := svc.Schedule(context.Background(), models.ScheduleAppointmentRequest{
		Name:          "Amina Okafor",
		Email:         "amina@example.com",
		PreferredDate: "2026-09-10",
		PreferredTime: "9:30 AM",
	})
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestSchedule_InvalidDate(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeNotifier{}, nil)

	_, err := svc.Schedule(context.Background(), models.ScheduleAppointmentRequest{
		Name:          "Amina Okafor",
		Email:         "amina@example.com",
		PreferredDate: "next tuesday",
		PreferredTime: "10:00 AM",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSchedule_EmailFailureDoesNotFail(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := newTestService(repo, notifier, nil)

	appt, err := svc.Schedule(context.Background(), models.ScheduleAppointmentRequest{
		Name:          "Amina Okafor",
		Email:         "amina@example.com",
		PreferredDate: "2026-09-10",
		PreferredTime: "10:00 AM",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, stored.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeNotifier{}, nil)

	_, err := svc.UpdateStatus(context.Background(), "appt-1", "pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), "appt-1", "done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, &fakeNotifier{}, nil)

	_, err := svc.UpdateStatus(context.Background(), "missing", models.AppointmentConfirmed)
	assert.ErrorIs(t, err, appointmentRepo.ErrNotFound)

	// The transition loads the appointment first; an unknown id must not
	// reach the status write.
	assert.Equal(t, 1, repo.getByIDs)
	assert.Zero(t, repo.statusWrite)
}

func TestUpdateStatus_ConfirmedCreatesCalendarEvent(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	cal := &fakeCalendar{}
	notifier := &fakeNotifier{}
	seeded := seedAppointment(repo, "2026-09-10", "2:00 PM", models.AppointmentPending)
	svc := newTestService(repo, notifier, cal)

	appt, err := svc.UpdateStatus(context.Background(), seeded.ID, models.AppointmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, appt.Status)
	assert.Equal(t, "evt-1", appt.CalendarEventID)
	assert.Equal(t, 1, notifier.statuses)

	require.Len(t, cal.events, 1)
	event := cal.events[0]
	assert.Equal(t, "America/New_York", event.TimeZone)
	assert.Equal(t, []string{"client@example.com"}, event.AttendeeEmails)
	assert.Equal(t, 14, event.Start.Hour())
	assert.Equal(t, time.Hour, event.End.Sub(event.Start))

	stored, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "evt-1", stored.CalendarEventID)
}

func TestUpdateStatus_CancelledSkipsCalendar(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	cal := &fakeCalendar{}
	seeded := seedAppointment(repo, "2026-09-10", "2:00 PM", models.AppointmentPending)
	svc := newTestService(repo, &fakeNotifier{}, cal)

	appt, err := svc.UpdateStatus(context.Background(), seeded.ID, models.AppointmentCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, appt.Status)
	assert.Empty(t, cal.events)
}

func TestUpdateStatus_SideEffectFailuresKeepStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	cal := &fakeCalendar{err: errors.New("calendar quota exceeded")}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	seeded := seedAppointment(repo, "2026-09-10", "2:00 PM", models.AppointmentPending)
	svc := newTestService(repo, notifier, cal)

	appt, err := svc.UpdateStatus(context.Background(), seeded.ID, models.AppointmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, appt.Status)
	assert.Empty(t, appt.CalendarEventID)

	stored, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, stored.Status)
}

func TestUpdateStatus_NoCalendarConfigured(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	seeded := seedAppointment(repo, "2026-09-10", "2:00 PM", models.AppointmentPending)
	svc := newTestService(repo, &fakeNotifier{}, nil)

	appt, err := svc.UpdateStatus(context.Background(), seeded.ID, models.AppointmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, appt.Status)
	assert.Empty(t, appt.CalendarEventID)
}

func TestTodaysConfirmed(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	seedAppointment(repo, "2026-09-01", "9:00 AM", models.AppointmentConfirmed)
	seedAppointment(repo, "2026-09-01", "10:00 AM", models.AppointmentPending)
	seedAppointment(repo, "2026-09-02", "9:00 AM", models.AppointmentConfirmed)
	svc := newTestService(repo, &fakeNotifier{}, nil)

	appts, err := svc.TodaysConfirmed(context.Background())
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "9:00 AM", appts[0].PreferredTime)
}

func TestParseSlotLabel(t *testing.T) {
	tests := []struct {
		label   string
		hour    int
		minute  int
		wantErr bool
	}{
		{label: "9:00 AM", hour: 9},
		{label: "12:00 PM", hour: 12},
		{label: "12:00 AM", hour: 0},
		{label: "1:00 PM", hour: 13},
		{label: "5:00 PM", hour: 17},
		{label: "2:30 PM", hour: 14, minute: 30},
		{label: "2:00", wantErr: true},
		{label: "2:00 XM", wantErr: true},
		{label: "afternoon", wantErr: true},
		{label: "", wantErr: true},
	}
	for _, tc := range tests {
		hour, minute, err := parseSlotLabel(tc.label)
		if tc.wantErr {
			assert.Error(t, err, "label %q", tc.label)
			continue
		}
		require.NoError(t, err, "label %q", tc.label)
		assert.Equal(t, tc.hour, hour, "label %q", tc.label)
		assert.Equal(t, tc.minute, minute, "label %q", tc.label)
	}
}
