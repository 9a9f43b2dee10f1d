package chatRepo

import (
	"context"
	"errors"

	"furaha/database"
	"furaha/models"
	"furaha/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSessionNotFound is returned when a session has no exchanges.
var ErrSessionNotFound = errors.New("chat session not found")

type ChatRepository interface {
	Insert(ctx context.Context, exchange *models.ChatExchange) error
	// RecentBySession returns up to limit exchanges for the session, newest first.
	RecentBySession(ctx context.Context, sessionID string, limit int64) ([]models.ChatExchange, error)
	// GetSession returns the full transcript in chronological order.
	GetSession(ctx context.Context, sessionID string) ([]models.ChatExchange, error)
	// SessionSummaries returns per-session aggregates, most recently active first.
	SessionSummaries(ctx context.Context, limit int64) ([]models.ChatSessionSummary, error)
}

type mongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo constructs a new MongoDB ChatRepository.
func NewMongoChatRepo() ChatRepository {
	repo := &mongoChatRepo{
		coll: database.DB().Collection("chat_messages"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("chat repo: %v", err)
	}
	return repo
}
