package conversations

import (
	"context"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/snapshot"
)

type DocumentRepository struct {
	convs *snapshot.Collection[[]models.Conversation]
}

func NewDocumentRepository(b snapshot.Backend) *DocumentRepository {
	return &DocumentRepository{convs: snapshot.NewCollection[[]models.Conversation](b, snapshot.Conversations)}
}

func (r *DocumentRepository) List(ctx context.Context, identifier string) ([]models.Conversation, error) {
	doc, err := r.convs.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc[identifier], nil
}

func (r *DocumentRepository) Get(ctx context.Context, identifier, id string) (*models.Conversation, error) {
	doc, err := r.convs.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc[identifier] {
		if doc[identifier][i].ID == id {
			c := doc[identifier][i]
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *DocumentRepository) Save(ctx context.Context, identifier string, conv models.Conversation) error {
	return r.convs.Update(ctx, func(doc map[string][]models.Conversation) error {
		list := doc[identifier]
		for i := range list {
			if list[i].ID == conv.ID {
				list[i].Messages = conv.Messages
				list[i].UpdatedAt = conv.UpdatedAt
				return nil
			}
		}
		doc[identifier] = append(list, conv)
		return nil
	})
}

func (r *DocumentRepository) Delete(ctx context.Context, identifier, id string) error {
	return r.convs.Update(ctx, func(doc map[string][]models.Conversation) error {
		list, ok := doc[identifier]
		if !ok {
			return nil
		}
		kept := list[:0]
		for _, c := range list {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		doc[identifier] = kept
		return nil
	})
}
