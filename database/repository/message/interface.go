package messageRepo

import (
	"context"
	"errors"

	"furaha/database"
	"furaha/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no contact message matches the given identity.
var ErrNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) (string, error)
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*models.ContactMessage, error)
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo constructs a new MongoDB MessageRepository.
func NewMongoMessageRepo() MessageRepository {
	return &mongoMessageRepo{
		coll: database.DB().Collection("messages"),
	}
}
