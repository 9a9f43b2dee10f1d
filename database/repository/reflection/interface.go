package reflectionRepo

import (
	"context"
	"errors"

	"furaha/database"
	"furaha/models"
	"furaha/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no reflection matches the given identity.
var ErrNotFound = errors.New("reflection not found")

type ReflectionRepository interface {
	Create(ctx context.Context, r *models.Reflection) (string, error)
	// GetPublished lists published reflections without their full content,
	// newest first.
	GetPublished(ctx context.Context) ([]models.Reflection, error)
	// GetByID loads one reflection. With publishedOnly set, unpublished
	// documents are reported as not found.
	GetByID(ctx context.Context, id string, publishedOnly bool) (*models.Reflection, error)
	Update(ctx context.Context, id string, input models.ReflectionInput) (*models.Reflection, error)
	Delete(ctx context.Context, id string) error
	SetAISummary(ctx context.Context, id, summary string) error
}

type mongoReflectionRepo struct {
	coll *mongo.Collection
}

// NewMongoReflectionRepo constructs a new MongoDB ReflectionRepository.
func NewMongoReflectionRepo() ReflectionRepository {
	repo := &mongoReflectionRepo{
		coll: database.DB().Collection("reflections"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("reflection repo: %v", err)
	}
	return repo
}
