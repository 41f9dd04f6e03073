package services

import (
	"context"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/conversations"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
)

// RecentWindow is how far back ListRecent looks.
const RecentWindow = 7 * 24 * time.Hour

// idLayout renders conversation ids as local ISO timestamps with microseconds.
const idLayout = "2006-01-02T15:04:05.000000"

// ConversationService stores transcripts.
type ConversationService struct {
	repo  conversations.Repository
	clock timex.Clock
}

func NewConversationService(repo conversations.Repository, clock timex.Clock) *ConversationService {
	return &ConversationService{repo: repo, clock: clock}
}

// NewID mints a conversation id from the current time.
func (s *ConversationService) NewID() string {
	return s.clock.Now().Format(idLayout)
}

// ListRecent returns the conversations created within RecentWindow of now,
// in insertion order. Older records stay stored and reachable through Get.
func (s *ConversationService) ListRecent(ctx context.Context, identifier string) ([]models.Conversation, error) {
	all, err := s.repo.List(ctx, identifier)
	if err != nil {
		return nil, err
	}

	cutoff := s.clock.Now().Add(-RecentWindow)
	out := make([]models.Conversation, 0, len(all))
	for _, c := range all {
		if c.CreatedAt.After(cutoff) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get returns one conversation regardless of its age.
func (s *ConversationService) Get(ctx context.Context, identifier, id string) (*models.Conversation, error) {
	return s.repo.Get(ctx, identifier, id)
}

// Save creates the conversation or, when id exists, replaces its messages
// and bumps updated_at. An existing title is never changed.
func (s *ConversationService) Save(ctx context.Context, identifier, id string, messages []models.Message, title string) error {
	now := s.clock.Now()
	return s.repo.Save(ctx, identifier, models.Conversation{
		ID:        id,
		Title:     title,
		Messages:  append([]models.Message(nil), messages...),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Delete removes id when present.
func (s *ConversationService) Delete(ctx context.Context, identifier, id string) error {
	return s.repo.Delete(ctx, identifier, id)
}
