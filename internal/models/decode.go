package models

import (
	"encoding/json"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
)

// The decoders below accept RFC 3339 and the zoneless ISO timestamps found
// in data files written by earlier versions of the app. Encoding is unchanged.

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	aux := struct {
		*plain
		CreatedAt timex.Timestamp `json:"created_at"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	u.CreatedAt = aux.CreatedAt.Time
	return nil
}

func (t *Topic) UnmarshalJSON(b []byte) error {
	type plain Topic
	aux := struct {
		*plain
		Timestamp timex.Timestamp `json:"timestamp"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	t.Timestamp = aux.Timestamp.Time
	return nil
}

func (c *ContextRecord) UnmarshalJSON(b []byte) error {
	type plain ContextRecord
	aux := struct {
		*plain
		LastInteraction *timex.Timestamp `json:"last_interaction"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.LastInteraction = nil
	if aux.LastInteraction != nil && !aux.LastInteraction.IsZero() {
		ts := aux.LastInteraction.Time
		c.LastInteraction = &ts
	}
	return nil
}

func (c *Conversation) UnmarshalJSON(b []byte) error {
	type plain Conversation
	aux := struct {
		*plain
		CreatedAt timex.Timestamp `json:"created_at"`
		UpdatedAt timex.Timestamp `json:"updated_at"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.CreatedAt = aux.CreatedAt.Time
	c.UpdatedAt = aux.UpdatedAt.Time
	return nil
}
