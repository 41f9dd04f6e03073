package users

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

func newUser(id, hash string) *models.User {
	return &models.User{
		Identifier:   id,
		PasswordHash: hash,
		CreatedAt:    time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
		Preferences:  models.DefaultPreferences(),
	}
}

func TestDocumentRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewDocumentRepository(snapshot.NewMemoryBackend())

	require.NoError(t, r.Create(ctx, newUser("a@x.com", "h1")))

	got, err := r.GetByIdentifier(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Identifier)
	assert.Equal(t, "h1", got.PasswordHash)
	assert.Equal(t, models.DefaultPreferences(), got.Preferences)
}

func TestDocumentRepository_DuplicateKeepsOriginal(t *testing.T) {
	ctx := context.Background()
	r := NewDocumentRepository(snapshot.NewMemoryBackend())

	require.NoError(t, r.Create(ctx, newUser("a@x.com", "h1")))
	err := r.Create(ctx, newUser("a@x.com", "h2"))
	require.ErrorIs(t, err, common.ErrAlreadyExists)

	got, err := r.GetByIdentifier(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "h1", got.PasswordHash)
}

func TestDocumentRepository_NotFound(t *testing.T) {
	r := NewDocumentRepository(snapshot.NewMemoryBackend())

	_, err := r.GetByIdentifier(context.Background(), "ghost@x.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDocumentRepository_FileLayoutMatchesUsersFile(t *testing.T) {
	ctx := context.Background()
	b := snapshot.NewMemoryBackend()
	r := NewDocumentRepository(b)

	require.NoError(t, r.Create(ctx, newUser("a@x.com", "h1")))

	raw, ok, err := b.Load(ctx, snapshot.Users)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{
		"a@x.com": {
			"password": "h1",
			"created_at": "2026-10-14T09:00:00Z",
			"preferences": {"model": "llama-3.3-70b-versatile", "temperature": 0.7, "theme": "light"}
		}
	}`, string(raw))
}
