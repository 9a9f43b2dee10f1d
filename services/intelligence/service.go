package ai

import (
	"context"
	"fmt"
	"strings"

	chatRepo "furaha/database/repository/chat"
	reflectionRepo "furaha/database/repository/reflection"
	"furaha/models"
	"furaha/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAIService is the production AIService implementation.
type DefaultAIService struct {
	Gen         Generator
	Chats       chatRepo.ChatRepository
	Reflections reflectionRepo.ReflectionRepository
}

func NewDefaultAIService(gen Generator, chats chatRepo.ChatRepository, reflections reflectionRepo.ReflectionRepository) *DefaultAIService {
	return &DefaultAIService{Gen: gen, Chats: chats, Reflections: reflections}
}

// Chat forwards the message plus up to the last ten exchanges of the session
// to the model, persists the new exchange, and returns the reply with the
// session identity (minted when the request carried none).
func (s *DefaultAIService) Chat(ctx context.Context, sessionID, message string) (*ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if len(message) > MaxChatMessageLen {
		return nil, ErrMessageTooLong
	}

	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	recent, err := s.Chats.RecentBySession(ctx, sessionID, contextWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	// RecentBySession returns newest first; replay chronologically as
	// alternating user/assistant turns, then append the new message.
	turns := make([]models.ChatTurn, 0, 2*len(recent)+1)
	for i := len(recent) - 1; i >= 0; i-- {
		turns = append(turns,
			models.ChatTurn{Role: "user", Content: recent[i].Message},
			models.ChatTurn{Role: "assistant", Content: recent[i].Response},
		)
	}
	turns = append(turns, models.ChatTurn{Role: "user", Content: message})

	response, err := s.Gen.Generate(ctx, chatSystemPrompt, turns)
	if err != nil {
		return nil, fmt.Errorf("failed to generate chat response: %w", err)
	}

	exchange := &models.ChatExchange{
		SessionID: sessionID,
		Message:   message,
		Response:  response,
	}
	if err := s.Chats.Insert(ctx, exchange); err != nil {
		return nil, fmt.Errorf("failed to save chat exchange: %w", err)
	}

	return &ChatResult{Response: response, SessionID: sessionID}, nil
}

// SummarizeReflection is idempotent per reflection: a cached summary is
// returned without a model call.
func (s *DefaultAIService) SummarizeReflection(ctx context.Context, reflectionID string) (string, error) {
	refl, err := s.Reflections.GetByID(ctx, reflectionID, true)
	if err != nil {
		return "", err
	}
	if refl.AISummary != "" {
		return refl.AISummary, nil
	}

	prompt := fmt.Sprintf(summaryPromptFormat, refl.Title, refl.Content)
	summary, err := s.Gen.Generate(ctx, "", []models.ChatTurn{{Role: "user", Content: prompt}})
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	if err := s.Reflections.SetAISummary(ctx, reflectionID, summary); err != nil {
		return "", fmt.Errorf("failed to cache summary: %w", err)
	}
	return summary, nil
}

// ItinerarySummary builds the daily digest text. Model failure degrades to a
// canned line so the itinerary email still goes out.
func (s *DefaultAIService) ItinerarySummary(ctx context.Context, appts []models.Appointment) (string, error) {
	if len(appts) == 0 {
		return "No appointments scheduled for today. Great day to focus on personal projects!", nil
	}

	lines := make([]string, 0, len(appts))
	for _, apt := range appts {
		msg := apt.Message
		if msg == "" {
			msg = "General consultation"
		}
		lines = append(lines, fmt.Sprintf("%s - %s (%s) - %s", apt.PreferredTime, apt.Name, apt.Email, msg))
	}

	prompt := fmt.Sprintf(itineraryPromptFormat, strings.Join(lines, "\n"))
	summary, err := s.Gen.Generate(ctx, "", []models.ChatTurn{{Role: "user", Content: prompt}})
	if err != nil {
		utils.GetLogger().Warn("itinerary summary generation failed", zap.Error(err))
		return "Your appointments are scheduled and ready for today!", nil
	}
	return summary, nil
}
