package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"furaha/database"
	"furaha/models"
	"furaha/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no appointment matches the given identity.
var ErrNotFound = errors.New("appointment not found")

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByDateAndStatuses returns appointments whose preferred date falls in
	// [dayStart, dayEnd] and whose status is one of the given values.
	GetByDateAndStatuses(ctx context.Context, dayStart, dayEnd time.Time, statuses []string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	SetCalendarEventID(ctx context.Context, id, eventID string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("appointment repo: %v", err)
	}
	return repo
}
