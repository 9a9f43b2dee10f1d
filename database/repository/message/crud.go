package messageRepo

import (
	"context"
	"time"

	"furaha/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new contact message and returns its ID.
func (r *mongoMessageRepo) Create(ctx context.Context, msg *models.ContactMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return "", err
	}
	return msg.ID, nil
}

// GetAll returns every contact message, newest first.
func (r *mongoMessageRepo) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []models.ContactMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkRead flags a message as read and returns the updated document.
func (r *mongoMessageRepo) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isRead": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var msg models.ContactMessage
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&msg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
