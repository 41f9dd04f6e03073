package conversations

import (
	"context"
	"testing"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func conv(id, title string, at time.Time, msgs ...models.Message) models.Conversation {
	return models.Conversation{ID: id, Title: title, Messages: msgs, CreatedAt: at, UpdatedAt: at}
}

func TestDocumentRepository_SaveAppendsThenUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	r := NewDocumentRepository(snapshot.NewMemoryBackend())

	first := conv("c1", "Hello", t0, models.Message{Role: models.RoleUser, Text: "Hello"})
	require.NoError(t, r.Save(ctx, "a@x.com", first))
	require.NoError(t, r.Save(ctx, "a@x.com", conv("c2", "Other", t0.Add(time.Minute))))

	update := conv("c1", "Chat", t0.Add(time.Hour),
		models.Message{Role: models.RoleUser, Text: "Hello"},
		models.Message{Role: models.RoleAssistant, Text: "Hi"})
	require.NoError(t, r.Save(ctx, "a@x.com", update))

	list, err := r.List(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, "Hello", list[0].Title, "title is kept on update")
	assert.Equal(t, t0, list[0].CreatedAt)
	assert.Equal(t, t0.Add(time.Hour), list[0].UpdatedAt)
	assert.Len(t, list[0].Messages, 2)
	assert.Equal(t, "c2", list[1].ID)
}

func TestDocumentRepository_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	r := NewDocumentRepository(snapshot.NewMemoryBackend())

	require.NoError(t, r.Save(ctx, "a@x.com", conv("c1", "Hello", t0)))

	got, err := r.Get(ctx, "a@x.com", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)

	_, err = r.Get(ctx, "b@x.com", "c1")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, r.Delete(ctx, "a@x.com", "missing"))
	require.NoError(t, r.Delete(ctx, "nobody", "c1"))
	require.NoError(t, r.Delete(ctx, "a@x.com", "c1"))

	_, err = r.Get(ctx, "a@x.com", "c1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDocumentRepository_JSONLayout(t *testing.T) {
	ctx := context.Background()
	b := snapshot.NewMemoryBackend()
	r := NewDocumentRepository(b)

	require.NoError(t, r.Save(ctx, "a@x.com", conv("c1", "Hello", t0,
		models.Message{Role: models.RoleUser, Text: "Hello"})))

	raw, _, err := b.Load(ctx, snapshot.Conversations)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a@x.com":[{
		"id":"c1","title":"Hello","messages":[["user","Hello"]],
		"created_at":"2026-10-14T09:00:00Z","updated_at":"2026-10-14T09:00:00Z"}]}`, string(raw))
}
