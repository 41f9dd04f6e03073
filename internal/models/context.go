package models

import "time"

// Limits applied to a ContextRecord.
const (
	MaxTopics        = 50
	MaxSnippetLength = 100
)

// Topic is one truncated user message kept to seed conversational memory.
type Topic struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ContextRecord is the rolling per-user memory.
type ContextRecord struct {
	Topics           []Topic        `json:"topics_discussed"`
	Preferences      map[string]any `json:"preferences"`
	InteractionCount int            `json:"interaction_count"`
	LastInteraction  *time.Time     `json:"last_interaction"`
}

// NewContextRecord returns the zero-valued record handed out for unknown users.
func NewContextRecord() *ContextRecord {
	return &ContextRecord{Topics: []Topic{}, Preferences: map[string]any{}}
}

// Append adds t, keeping only the last keep topics, and bumps the counters.
func (c *ContextRecord) Append(t Topic, keep int) {
	c.Topics = append(c.Topics, t)
	if keep > 0 && len(c.Topics) > keep {
		c.Topics = append([]Topic(nil), c.Topics[len(c.Topics)-keep:]...)
	}
	c.InteractionCount++
	ts := t.Timestamp
	c.LastInteraction = &ts
}

// RecentSnippets returns the messages of the last n topics, oldest first.
func (c *ContextRecord) RecentSnippets(n int) []string {
	if n <= 0 || len(c.Topics) == 0 {
		return nil
	}
	start := len(c.Topics) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, 0, len(c.Topics)-start)
	for _, t := range c.Topics[start:] {
		out = append(out, t.Message)
	}
	return out
}
