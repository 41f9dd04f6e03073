// Package session holds the per-login state of one authenticated user and
// the controller that creates and discards it.
//
// A Session is ANONYMOUS until Controller.Login or Controller.Restore hands
// it out and goes back only through Controller.Logout. Everything a turn
// touches (history, active conversation, model settings, conversational
// memory) lives in its State and is reached through Do, which serialises
// access so one session runs one turn at a time.
package session

import (
	"sync"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/llm"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
)

// State is the mutable part of a session. It is only valid inside Do.
type State struct {
	History        []models.Message
	ConversationID string
	Model          string
	Temperature    float64

	// Memory is the conversational memory sent with each completion. It is
	// seeded lazily from the context store; Seeded reports whether that
	// happened for the current model settings.
	Memory []llm.Message
	Seeded bool
}

// InvalidateMemory drops the memory so the next turn reseeds it.
func (st *State) InvalidateMemory() {
	st.Memory = nil
	st.Seeded = false
}

type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	identifier string
	loggedIn   bool
	state      State
}

func newSession(id, identifier string, prefs models.Preferences, now time.Time) *Session {
	s := &Session{ID: id, CreatedAt: now, identifier: identifier, loggedIn: true}
	s.state.Model = prefs.Model
	s.state.Temperature = prefs.Temperature
	if _, ok := llm.Lookup(s.state.Model); !ok {
		s.state.Model = models.DefaultModel
	}
	if s.state.Temperature < 0 || s.state.Temperature > 1 {
		s.state.Temperature = models.DefaultTemperature
	}
	return s
}

// Do runs fn with exclusive access to the session state.
func (s *Session) Do(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loggedIn {
		return common.ErrorUnauthorized
	}
	return fn(&s.state)
}

// Identifier names the logged-in user, or "" once the session is logged out.
func (s *Session) Identifier() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identifier
}

// Authenticated reports whether the session is still logged in.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// View is a copy of the state for rendering.
type View struct {
	Identifier     string
	History        []models.Message
	ConversationID string
	Model          string
	Temperature    float64
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Identifier:     s.identifier,
		History:        append([]models.Message(nil), s.state.History...),
		ConversationID: s.state.ConversationID,
		Model:          s.state.Model,
		Temperature:    s.state.Temperature,
	}
}

// NewChat starts an empty transcript under the freshly minted id.
func (s *Session) NewChat(id string) error {
	return s.Do(func(st *State) error {
		st.History = nil
		st.ConversationID = id
		st.InvalidateMemory()
		return nil
	})
}

// ClearChat empties the transcript and forgets the active conversation; the
// next turn starts a new one.
func (s *Session) ClearChat() error {
	return s.Do(func(st *State) error {
		st.History = nil
		st.ConversationID = ""
		st.InvalidateMemory()
		return nil
	})
}

// LoadConversation makes conv the active conversation. Memory is kept.
func (s *Session) LoadConversation(conv *models.Conversation) error {
	return s.Do(func(st *State) error {
		st.ConversationID = conv.ID
		st.History = append([]models.Message(nil), conv.Messages...)
		return nil
	})
}

// SetModel selects one of llm.Models for the following turns.
func (s *Session) SetModel(id string) error {
	if _, ok := llm.Lookup(id); !ok {
		return common.ErrUnknownModel
	}
	return s.Do(func(st *State) error {
		if st.Model != id {
			st.Model = id
			st.InvalidateMemory()
		}
		return nil
	})
}

// SetTemperature accepts values in [0.0, 1.0].
func (s *Session) SetTemperature(t float64) error {
	if t < 0 || t > 1 {
		return common.ErrTemperatureRange
	}
	return s.Do(func(st *State) error {
		if st.Temperature != t {
			st.Temperature = t
			st.InvalidateMemory()
		}
		return nil
	})
}

func (s *Session) logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.identifier = ""
	s.state = State{}
}
