package ai

import (
	"context"
	"errors"

	"furaha/models"
)

// ErrEmptyMessage is returned when a chat request carries no usable text.
var ErrEmptyMessage = errors.New("message is required")

// ErrMessageTooLong is returned when a chat message exceeds the limit.
var ErrMessageTooLong = errors.New("message is too long")

// MaxChatMessageLen bounds a single chat message.
const MaxChatMessageLen = 1000

// contextWindow is how many prior exchanges are replayed to the model.
const contextWindow = 10

// Generator produces text from a system instruction and a turn sequence.
// The last turn is the new user message; earlier turns are history.
type Generator interface {
	Generate(ctx context.Context, system string, turns []models.ChatTurn) (string, error)
}

// ChatResult is the outcome of one chat exchange.
type ChatResult struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

// AIService orchestrates chat, reflection summarization and itinerary
// summaries over the external model.
type AIService interface {
	Chat(ctx context.Context, sessionID, message string) (*ChatResult, error)
	// SummarizeReflection returns the cached summary when one exists;
	// otherwise it generates, caches and returns a new one.
	SummarizeReflection(ctx context.Context, reflectionID string) (string, error)
	ItinerarySummary(ctx context.Context, appts []models.Appointment) (string, error)
}
