// Package chat runs one conversational turn: it records the message in the
// context store, answers the profile question locally or asks the completion
// endpoint, and persists the transcript.
package chat

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/llm"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/logging"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/session"
)

const (
	// seedSnippets is how many recent context snippets seed a fresh memory.
	seedSnippets = 5
	// titleLength is the length of a first-turn conversation title.
	titleLength = 30
	// defaultTitle is sent on every save past the first turn.
	defaultTitle = "Chat"

	seedPrompt  = "System: Loading previous context"
	seedPrefix  = "Previous context: "
	seedJoinSep = "; "
)

// attachmentTypes are the extensions Attach accepts.
var attachmentTypes = map[string]bool{
	".txt": true, ".pdf": true, ".docx": true, ".jpg": true, ".png": true,
}

type ContextStore interface {
	Update(ctx context.Context, identifier, message string) error
	RecentSnippets(ctx context.Context, identifier string, n int) ([]string, error)
}

type ConversationStore interface {
	NewID() string
	Save(ctx context.Context, identifier, id string, messages []models.Message, title string) error
}

type Orchestrator struct {
	contexts  ContextStore
	convs     ConversationStore
	completer llm.Completer
	metrics   *Metrics
	logger    logging.Logger
}

func NewOrchestrator(contexts ContextStore, convs ConversationStore, completer llm.Completer,
	metrics *Metrics, logger logging.Logger) *Orchestrator {
	return &Orchestrator{
		contexts:  contexts,
		convs:     convs,
		completer: completer,
		metrics:   metrics,
		logger:    logger.With("module", "chat"),
	}
}

// Turn processes message m for session s and returns the assistant reply.
//
// When the completion endpoint fails the user message is taken back out of
// the history and nothing is saved to the conversation store; the context
// store keeps the message. The returned error wraps common.ErrUpstream.
func (o *Orchestrator) Turn(ctx context.Context, s *session.Session, m string) (string, error) {
	if strings.TrimSpace(m) == "" {
		return "", common.ErrEmptyMessage
	}

	identifier := s.Identifier()
	var reply string
	err := s.Do(func(st *session.State) error {
		if !st.Seeded {
			if err := o.seed(ctx, identifier, st); err != nil {
				o.metrics.TurnsTotal.WithLabelValues(OutcomeStorageError).Inc()
				return err
			}
		}

		st.History = append(st.History, models.Message{Role: models.RoleUser, Text: m})

		if err := o.contexts.Update(ctx, identifier, m); err != nil {
			st.History = st.History[:len(st.History)-1]
			o.metrics.TurnsTotal.WithLabelValues(OutcomeStorageError).Inc()
			return err
		}

		outcome := OutcomeCompleted
		if isProfileQuestion(m) {
			reply = ProfileResponse
			outcome = OutcomeCanned
		} else {
			r, err := o.complete(ctx, st, m)
			if err != nil {
				st.History = st.History[:len(st.History)-1]
				o.metrics.TurnsTotal.WithLabelValues(OutcomeUpstreamError).Inc()
				o.logger.Error(ctx, "completion failed", "identifier", identifier, "model", st.Model, "error", err)
				return fmt.Errorf("%w: %w", common.ErrUpstream, err)
			}
			reply = r
		}

		st.History = append(st.History, models.Message{Role: models.RoleAssistant, Text: reply})

		if st.ConversationID == "" {
			st.ConversationID = o.convs.NewID()
		}

		title := defaultTitle
		if len(st.History) == 2 {
			title = common.Truncate(m, titleLength)
		}

		if err := o.convs.Save(ctx, identifier, st.ConversationID, st.History, title); err != nil {
			o.metrics.TurnsTotal.WithLabelValues(OutcomeStorageError).Inc()
			return err
		}

		o.metrics.TurnsTotal.WithLabelValues(outcome).Inc()
		o.logger.Debug(ctx, "turn completed", "identifier", identifier,
			"conversation", st.ConversationID, "outcome", outcome)
		return nil
	})
	if err != nil {
		return "", err
	}
	return reply, nil
}

func (o *Orchestrator) complete(ctx context.Context, st *session.State, m string) (string, error) {
	start := time.Now()
	reply, err := o.completer.Complete(ctx, llm.Request{
		Model:       st.Model,
		Temperature: st.Temperature,
		History:     append([]llm.Message(nil), st.Memory...),
		Input:       m,
	})
	o.metrics.CompletionDuration.WithLabelValues(st.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}

	st.Memory = append(st.Memory,
		llm.Message{Role: llm.RoleHuman, Content: m},
		llm.Message{Role: llm.RoleAI, Content: reply},
	)
	return reply, nil
}

// seed rebuilds the memory from the newest context snippets.
func (o *Orchestrator) seed(ctx context.Context, identifier string, st *session.State) error {
	snippets, err := o.contexts.RecentSnippets(ctx, identifier, seedSnippets)
	if err != nil {
		return err
	}

	st.Memory = nil
	if len(snippets) > 0 {
		st.Memory = []llm.Message{
			{Role: llm.RoleHuman, Content: seedPrompt},
			{Role: llm.RoleAI, Content: seedPrefix + strings.Join(snippets, seedJoinSep)},
		}
	}
	st.Seeded = true
	return nil
}

// Attach acknowledges an uploaded file by name. The file is neither stored
// nor forwarded.
func (o *Orchestrator) Attach(name string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || !attachmentTypes[strings.ToLower(filepath.Ext(base))] {
		return "", common.ErrUnsupportedAttachment
	}
	return base, nil
}
