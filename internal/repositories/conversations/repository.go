// Package conversations persists chat transcripts, one ordered list per user.
package conversations

import (
	"context"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
)

type Repository interface {
	// List returns every conversation of identifier in insertion order.
	List(ctx context.Context, identifier string) ([]models.Conversation, error)
	// Get returns common.ErrorNotFound when id is absent.
	Get(ctx context.Context, identifier, id string) (*models.Conversation, error)
	// Save appends conv, or when conv.ID already exists replaces its messages
	// and updated_at. Title and created_at of an existing record are kept.
	Save(ctx context.Context, identifier string, conv models.Conversation) error
	// Delete removes id; absent ids are not an error.
	Delete(ctx context.Context, identifier, id string) error
}
