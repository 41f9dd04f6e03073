// Package contexts persists the rolling per-user memory.
package contexts

import (
	"context"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when the user has no record yet.
	Get(ctx context.Context, identifier string) (*models.ContextRecord, error)
	// Append records topic, keeps only the newest keep topics and bumps the
	// interaction counter, creating the record when needed.
	Append(ctx context.Context, identifier string, topic models.Topic, keep int) error
}
