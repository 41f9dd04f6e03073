package chat

import (
	"fmt"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
)

const (
	summaryTopics = 3
	topicPreview  = 50
	titlePreview  = 20
	ellipsis      = "..."
)

// Summary is the context memory panel shown next to a conversation.
type Summary struct {
	InteractionCount int
	LastSeen         string
	RecentTopics     []string
}

// Summarize renders rec as seen at now. Recent topics are the last three,
// oldest first, each cut to 50 characters.
func Summarize(rec *models.ContextRecord, now time.Time) Summary {
	snippets := rec.RecentSnippets(summaryTopics)
	topics := make([]string, 0, len(snippets))
	for _, t := range snippets {
		topics = append(topics, common.Truncate(t, topicPreview)+ellipsis)
	}
	return Summary{
		InteractionCount: rec.InteractionCount,
		LastSeen:         LastSeen(now, rec.LastInteraction),
		RecentTopics:     topics,
	}
}

// LastSeen renders the time since the last interaction in whole days, or in
// whole hours when less than a day has passed. A nil time renders nothing.
func LastSeen(now time.Time, last *time.Time) string {
	if last == nil {
		return ""
	}
	d := now.Sub(*last)
	if d < 0 {
		d = 0
	}
	if days := int(d / (24 * time.Hour)); days > 0 {
		return fmt.Sprintf("Last seen: %d days ago", days)
	}
	return fmt.Sprintf("Last seen: %d hours ago", int(d/time.Hour))
}

// PreviewTitle is the conversation title as listed in the recent chats.
func PreviewTitle(title string) string {
	return common.Truncate(title, titlePreview) + ellipsis
}
