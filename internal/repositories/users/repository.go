// Package users persists registered accounts.
package users

import (
	"context"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
)

type Repository interface {
	// Create stores user; common.ErrAlreadyExists when the identifier is taken.
	Create(ctx context.Context, user *models.User) error
	// GetByIdentifier returns common.ErrorNotFound for unknown identifiers.
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
}
