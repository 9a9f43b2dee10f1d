package chatRepo

import (
	"context"
	"time"

	"furaha/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoChatRepo) Insert(ctx context.Context, exchange *models.ChatExchange) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if exchange.CreatedAt.IsZero() {
		exchange.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, exchange)
	return err
}

func (r *mongoChatRepo) RecentBySession(ctx context.Context, sessionID string, limit int64) ([]models.ChatExchange, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exchanges []models.ChatExchange
	if err := cursor.All(ctx, &exchanges); err != nil {
		return nil, err
	}
	return exchanges, nil
}

func (r *mongoChatRepo) GetSession(ctx context.Context, sessionID string) ([]models.ChatExchange, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exchanges []models.ChatExchange
	if err := cursor.All(ctx, &exchanges); err != nil {
		return nil, err
	}
	if len(exchanges) == 0 {
		return nil, ErrSessionNotFound
	}
	return exchanges, nil
}
