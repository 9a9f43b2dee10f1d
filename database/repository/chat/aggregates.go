package chatRepo

import (
	"context"
	"time"

	"furaha/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SessionSummaries groups exchanges by session and reports per-session
// counts and the latest turn, most recently active first.
func (r *mongoChatRepo) SessionSummaries(ctx context.Context, limit int64) ([]models.ChatSessionSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$sort": bson.M{"createdAt": 1}},
		bson.M{"$group": bson.M{
			"_id":          "$sessionId",
			"messageCount": bson.M{"$sum": 1},
			"lastMessage":  bson.M{"$last": "$message"},
			"lastResponse": bson.M{"$last": "$response"},
			"createdAt":    bson.M{"$first": "$createdAt"},
			"updatedAt":    bson.M{"$last": "$createdAt"},
		}},
		bson.M{"$sort": bson.M{"updatedAt": -1}},
		bson.M{"$limit": limit},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []models.ChatSessionSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
