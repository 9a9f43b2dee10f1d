package reflectionRepo

import (
	"context"
	"time"

	"furaha/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new reflection and returns its ID.
func (r *mongoReflectionRepo) Create(ctx context.Context, refl *models.Reflection) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if refl.ID == "" {
		refl.ID = uuid.New().String()
	}
	refl.CreatedAt = time.Now()
	refl.UpdatedAt = refl.CreatedAt

	if _, err := r.coll.InsertOne(ctx, refl); err != nil {
		return "", err
	}
	return refl.ID, nil
}

// GetPublished lists published reflections, newest first, omitting content.
func (r *mongoReflectionRepo) GetPublished(ctx context.Context) ([]models.Reflection, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"content": 0})
	cursor, err := r.coll.Find(ctx, bson.M{"isPublished": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var refls []models.Reflection
	if err := cursor.All(ctx, &refls); err != nil {
		return nil, err
	}
	return refls, nil
}

func (r *mongoReflectionRepo) GetByID(ctx context.Context, id string, publishedOnly bool) (*models.Reflection, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if publishedOnly {
		filter["isPublished"] = true
	}

	var refl models.Reflection
	err := r.coll.FindOne(ctx, filter).Decode(&refl)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &refl, nil
}

// Update replaces the editable fields and returns the updated document.
func (r *mongoReflectionRepo) Update(ctx context.Context, id string, input models.ReflectionInput) (*models.Reflection, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       input.Title,
		"content":     input.Content,
		"excerpt":     input.Excerpt,
		"readTime":    input.ReadTime,
		"tags":        input.Tags,
		"isPublished": input.IsPublished,
		"updatedAt":   time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var refl models.Reflection
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&refl)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &refl, nil
}

func (r *mongoReflectionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAISummary caches the generated summary on the document.
func (r *mongoReflectionRepo) SetAISummary(ctx context.Context, id, summary string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"aiSummary": summary, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
