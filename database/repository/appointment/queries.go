package appointmentRepo

import (
	"context"
	"time"

	"furaha/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByDateAndStatuses fetches appointments in the given day bounds with one
// of the given statuses, sorted by preferred time label.
func (r *mongoAppointmentRepo) GetByDateAndStatuses(ctx context.Context, dayStart, dayEnd time.Time, statuses []string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"preferredDate": bson.M{"$gte": dayStart, "$lte": dayEnd},
		"status":        bson.M{"$in": statuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "preferredTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
