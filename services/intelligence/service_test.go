package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	chatRepo "furaha/database/repository/chat"
	reflectionRepo "furaha/database/repository/reflection"
	"furaha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records every call and replays scripted responses.
type fakeGenerator struct {
	calls []generateCall
	reply string
	err   error
}

type generateCall struct {
	system string
	turns  []models.ChatTurn
}

func (f *fakeGenerator) Generate(_ context.Context, system string, turns []models.ChatTurn) (string, error) {
	f.calls = append(f.calls, generateCall{system: system, turns: turns})
	if f.err != nil {
		return "", f.err
	}
	if f.reply != "" {
		return f.reply, nil
	}
	return "model reply", nil
}

// fakeChatRepo stores exchanges in memory, newest last.
type fakeChatRepo struct {
	exchanges []models.ChatExchange
}

func (f *fakeChatRepo) Insert(_ context.Context, exchange *models.ChatExchange) error {
	exchange.CreatedAt = time.Now()
	f.exchanges = append(f.exchanges, *exchange)
	return nil
}

func (f *fakeChatRepo) RecentBySession(_ context.Context, sessionID string, limit int64) ([]models.ChatExchange, error) {
	var out []models.ChatExchange
	for i := len(f.exchanges) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if f.exchanges[i].SessionID == sessionID {
			out = append(out, f.exchanges[i])
		}
	}
	return out, nil
}

func (f *fakeChatRepo) GetSession(_ context.Context, sessionID string) ([]models.ChatExchange, error) {
	var out []models.ChatExchange
	for _, ex := range f.exchanges {
		if ex.SessionID == sessionID {
			out = append(out, ex)
		}
	}
	if len(out) == 0 {
		return nil, chatRepo.ErrSessionNotFound
	}
	return out, nil
}

func (f *fakeChatRepo) SessionSummaries(_ context.Context, _ int64) ([]models.ChatSessionSummary, error) {
	return nil, nil
}

// fakeReflectionRepo holds a handful of reflections keyed by id.
type fakeReflectionRepo struct {
	reflections map[string]*models.Reflection
}

func (f *fakeReflectionRepo) Create(_ context.Context, r *models.Reflection) (string, error) {
	f.reflections[r.ID] = r
	return r.ID, nil
}

func (f *fakeReflectionRepo) GetPublished(_ context.Context) ([]models.Reflection, error) {
	return nil, nil
}

func (f *fakeReflectionRepo) GetByID(_ context.Context, id string, publishedOnly bool) (*models.Reflection, error) {
	r, ok := f.reflections[id]
	if !ok || (publishedOnly && !r.IsPublished) {
		return nil, reflectionRepo.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReflectionRepo) Update(_ context.Context, id string, _ models.ReflectionInput) (*models.Reflection, error) {
	return nil, reflectionRepo.ErrNotFound
}

func (f *fakeReflectionRepo) Delete(_ context.Context, id string) error {
	return reflectionRepo.ErrNotFound
}

func (f *fakeReflectionRepo) SetAISummary(_ context.Context, id, summary string) error {
	r, ok := f.reflections[id]
	if !ok {
		return reflectionRepo.ErrNotFound
	}
	r.AISummary = summary
	return nil
}

func newTestAIService(gen *fakeGenerator) (*DefaultAIService, *fakeChatRepo, *fakeReflectionRepo) {
	chats := &fakeChatRepo{}
	reflections := &fakeReflectionRepo{reflections: make(map[string]*models.Reflection)}
	return NewDefaultAIService(gen, chats, reflections), chats, reflections
}

func TestChat_MintsSessionID(t *testing.T) {
	gen := &fakeGenerator{}
	svc, chats, _ := newTestAIService(gen)

	result, err := svc.Chat(context.Background(), "", "Tell me about your design process")
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "model reply", result.Response)

	require.Len(t, chats.exchanges, 1)
	assert.Equal(t, result.SessionID, chats.exchanges[0].SessionID)
}

func TestChat_KeepsSessionID(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, _ := newTestAIService(gen)

	result, err := svc.Chat(context.Background(), "sess-1", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", result.SessionID)
}

func TestChat_EmptyMessage(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, _ := newTestAIService(gen)

	_, err := svc.Chat(context.Background(), "", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, gen.calls)
}

func TestChat_MessageTooLong(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, _ := newTestAIService(gen)

	_, err := svc.Chat(context.Background(), "", strings.Repeat("a", MaxChatMessageLen+1))
	assert.ErrorIs(t, err, ErrMessageTooLong)
	assert.Empty(t, gen.calls)
}

func TestChat_ReplaysHistoryChronologically(t *testing.T) {
	gen := &fakeGenerator{reply: "first reply"}
	svc, _, _ := newTestAIService(gen)

	result, err := svc.Chat(context.Background(), "", "first question")
	require.NoError(t, err)

	gen.reply = "second reply"
	_, err = svc.Chat(context.Background(), result.SessionID, "second question")
	require.NoError(t, err)

	require.Len(t, gen.calls, 2)

	// First call carries only the new message.
	require.Len(t, gen.calls[0].turns, 1)
	assert.Equal(t, "user", gen.calls[0].turns[0].Role)
	assert.Equal(t, "first question", gen.calls[0].turns[0].Content)

	// Second call replays the prior exchange before the new message.
	turns := gen.calls[1].turns
	require.Len(t, turns, 3)
	assert.Equal(t, models.ChatTurn{Role: "user", Content: "first question"}, turns[0])
	assert.Equal(t, models.ChatTurn{Role: "assistant", Content: "first reply"}, turns[1])
	assert.Equal(t, models.ChatTurn{Role: "user", Content: "second question"}, turns[2])
}

func TestChat_SendsSystemPrompt(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, _ := newTestAIService(gen)

	_, err := svc.Chat(context.Background(), "", "Hello")
	require.NoError(t, err)
	require.Len(t, gen.calls, 1)
	assert.Contains(t, gen.calls[0].system, "Uwize Furaha")
}

func TestChat_GeneratorFailureNotPersisted(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	svc, chats, _ := newTestAIService(gen)

	_, err := svc.Chat(context.Background(), "", "Hello")
	require.Error(t, err)
	assert.Empty(t, chats.exchanges)
}

func TestSummarizeReflection_GeneratesAndCaches(t *testing.T) {
	gen := &fakeGenerator{reply: "A short summary."}
	svc, _, reflections := newTestAIService(gen)
	reflections.reflections["refl-1"] = &models.Reflection{
		ID:          "refl-1",
		Title:       "On Whitespace",
		Content:     strings.Repeat("Design thinking. ", 20),
		IsPublished: true,
	}

	summary, err := svc.SummarizeReflection(context.Background(), "refl-1")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", summary)
	assert.Equal(t, "A short summary.", reflections.reflections["refl-1"].AISummary)

	require.Len(t, gen.calls, 1)
	assert.Contains(t, gen.calls[0].turns[0].Content, "On Whitespace")
}

func TestSummarizeReflection_CachedSkipsModel(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, reflections := newTestAIService(gen)
	reflections.reflections["refl-1"] = &models.Reflection{
		ID:          "refl-1",
		Title:       "On Whitespace",
		Content:     "Long enough content.",
		IsPublished: true,
		AISummary:   "Already summarized.",
	}

	summary, err := svc.SummarizeReflection(context.Background(), "refl-1")
	require.NoError(t, err)
	assert.Equal(t, "Already summarized.", summary)
	assert.Empty(t, gen.calls)
}

func TestSummarizeReflection_UnpublishedNotFound(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, reflections := newTestAIService(gen)
	reflections.reflections["refl-1"] = &models.Reflection{
		ID:      "refl-1",
		Title:   "Draft",
		Content: "Not public yet.",
	}

	_, err := svc.SummarizeReflection(context.Background(), "refl-1")
	assert.ErrorIs(t, err, reflectionRepo.ErrNotFound)
}

func TestItinerarySummary_Empty(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, _ := newTestAIService(gen)

	summary, err := svc.ItinerarySummary(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, summary, "No appointments scheduled")
	assert.Empty(t, gen.calls)
}

func TestItinerarySummary_DegradesOnModelFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	svc, _, _ := newTestAIService(gen)

	summary, err := svc.ItinerarySummary(context.Background(), []models.Appointment{
		{Name: "Amina Okafor", Email: "amina@example.com", PreferredTime: "10:00 AM"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, summary)
}

func TestItinerarySummary_IncludesAppointmentLines(t *testing.T) {
	gen := &fakeGenerator{reply: "Busy morning ahead."}
	svc, _, _ := newTestAIService(gen)

	_, err := svc.ItinerarySummary(context.Background(), []models.Appointment{
		{Name: "Amina Okafor", Email: "amina@example.com", PreferredTime: "10:00 AM", Message: "Logo review"},
		{Name: "Ben Carter", Email: "ben@example.com", PreferredTime: "2:00 PM"},
	})
	require.NoError(t, err)
	require.Len(t, gen.calls, 1)
	prompt := gen.calls[0].turns[0].Content
	assert.Contains(t, prompt, "10:00 AM - Amina Okafor (amina@example.com) - Logo review")
	assert.Contains(t, prompt, "2:00 PM - Ben Carter (ben@example.com) - General consultation")
}
