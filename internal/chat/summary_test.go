package chat

import (
	"testing"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLastSeen(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	ago := func(d time.Duration) *time.Time {
		v := now.Add(-d)
		return &v
	}

	assert.Equal(t, "", LastSeen(now, nil))
	assert.Equal(t, "Last seen: 0 hours ago", LastSeen(now, ago(59*time.Minute)))
	assert.Equal(t, "Last seen: 5 hours ago", LastSeen(now, ago(5*time.Hour+30*time.Minute)))
	assert.Equal(t, "Last seen: 1 days ago", LastSeen(now, ago(25*time.Hour)))
	assert.Equal(t, "Last seen: 3 days ago", LastSeen(now, ago(72*time.Hour)))
	assert.Equal(t, "Last seen: 0 hours ago", LastSeen(now, ago(-time.Hour)))
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	rec := models.NewContextRecord()
	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"
	for i, m := range []string{"one", "two", "three", long} {
		rec.Append(models.Topic{Message: m, Timestamp: now.Add(time.Duration(i-10) * time.Hour)}, models.MaxTopics)
	}
	rec.InteractionCount = 4
	last := now.Add(-7 * time.Hour)
	rec.LastInteraction = &last

	s := Summarize(rec, now)
	assert.Equal(t, 4, s.InteractionCount)
	assert.Equal(t, "Last seen: 7 hours ago", s.LastSeen)
	assert.Equal(t, []string{"two...", "three...", long[:50] + "..."}, s.RecentTopics)

	empty := Summarize(models.NewContextRecord(), now)
	assert.Zero(t, empty.InteractionCount)
	assert.Empty(t, empty.LastSeen)
	assert.Empty(t, empty.RecentTopics)
}

func TestPreviewTitle(t *testing.T) {
	assert.Equal(t, "Hello...", PreviewTitle("Hello"))
	assert.Equal(t, "12345678901234567890...", PreviewTitle("1234567890123456789012345"))
}
