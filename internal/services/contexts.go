package services

import (
	"context"
	"errors"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/contexts"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
)

// ContextService maintains the rolling per-user memory.
type ContextService struct {
	repo  contexts.Repository
	clock timex.Clock
}

func NewContextService(repo contexts.Repository, clock timex.Clock) *ContextService {
	return &ContextService{repo: repo, clock: clock}
}

// Get never reports absence: users without a record get an empty one.
func (s *ContextService) Get(ctx context.Context, identifier string) (*models.ContextRecord, error) {
	rec, err := s.repo.Get(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.NewContextRecord(), nil
		}
		return nil, err
	}
	return rec, nil
}

// Update records the first MaxSnippetLength characters of message.
func (s *ContextService) Update(ctx context.Context, identifier, message string) error {
	topic := models.Topic{
		Message:   common.Truncate(message, models.MaxSnippetLength),
		Timestamp: s.clock.Now(),
	}
	return s.repo.Append(ctx, identifier, topic, models.MaxTopics)
}

// RecentSnippets returns up to n of the newest snippets, oldest first.
func (s *ContextService) RecentSnippets(ctx context.Context, identifier string, n int) ([]string, error) {
	rec, err := s.Get(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return rec.RecentSnippets(n), nil
}
