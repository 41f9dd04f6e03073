package users

import (
	"context"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/snapshot"
)

// DocumentRepository keeps all users in one snapshot keyed by identifier.
type DocumentRepository struct {
	users *snapshot.Collection[models.User]
}

func NewDocumentRepository(b snapshot.Backend) *DocumentRepository {
	return &DocumentRepository{users: snapshot.NewCollection[models.User](b, snapshot.Users)}
}

func (r *DocumentRepository) Create(ctx context.Context, user *models.User) error {
	return r.users.Update(ctx, func(doc map[string]models.User) error {
		if _, ok := doc[user.Identifier]; ok {
			return common.ErrAlreadyExists
		}
		doc[user.Identifier] = *user
		return nil
	})
}

func (r *DocumentRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	doc, err := r.users.Read(ctx)
	if err != nil {
		return nil, err
	}
	u, ok := doc[identifier]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.Identifier = identifier
	return &u, nil
}
