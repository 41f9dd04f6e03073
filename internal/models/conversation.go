package models

import (
	"encoding/json"
	"errors"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one (role, text) pair. It is encoded as a two-element JSON
// array, ["user", "Hello"], which is how existing transcript files store it.
type Message struct {
	Role Role
	Text string
}

func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{string(m.Role), m.Text})
}

func (m *Message) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.New("message must be a [role, text] pair")
	}
	m.Role = Role(pair[0])
	m.Text = pair[1]
	return nil
}

// Conversation is a persisted chat transcript owned by one user.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
