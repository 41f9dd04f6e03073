// Package services holds the three stores the chat core talks to: credentials,
// rolling context memory and conversation transcripts. Each service wraps one
// repository and owns the rules the repository is not aware of (hashing,
// truncation, recency windows, timestamps).
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/cryptox"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/users"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
)

// CredentialService registers and verifies users.
type CredentialService struct {
	repo   users.Repository
	hasher cryptox.PasswordHasher
	clock  timex.Clock
}

func NewCredentialService(repo users.Repository, hasher cryptox.PasswordHasher, clock timex.Clock) *CredentialService {
	return &CredentialService{repo: repo, hasher: hasher, clock: clock}
}

// Create stores a new user with default preferences. It reports false, and
// leaves the stored credential untouched, when identifier is already taken.
func (s *CredentialService) Create(ctx context.Context, identifier, secret string) (bool, error) {
	hash, err := s.hasher.Hash([]byte(secret))
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Identifier:   identifier,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
		Preferences:  models.DefaultPreferences(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Verify reports whether identifier exists and secret matches its stored
// hash. Unknown users and wrong secrets both yield false.
func (s *CredentialService) Verify(ctx context.Context, identifier, secret string) (bool, error) {
	user, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.hasher.Verify(user.PasswordHash, []byte(secret)), nil
}

// Profile returns the stored user record.
func (s *CredentialService) Profile(ctx context.Context, identifier string) (*models.User, error) {
	return s.repo.GetByIdentifier(ctx, identifier)
}
