package contexts

import (
	"context"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/snapshot"
)

type DocumentRepository struct {
	records *snapshot.Collection[*models.ContextRecord]
}

func NewDocumentRepository(b snapshot.Backend) *DocumentRepository {
	return &DocumentRepository{records: snapshot.NewCollection[*models.ContextRecord](b, snapshot.Context)}
}

func (r *DocumentRepository) Get(ctx context.Context, identifier string) (*models.ContextRecord, error) {
	doc, err := r.records.Read(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := doc[identifier]
	if !ok || rec == nil {
		return nil, common.ErrorNotFound
	}
	normalize(rec)
	return rec, nil
}

func (r *DocumentRepository) Append(ctx context.Context, identifier string, topic models.Topic, keep int) error {
	return r.records.Update(ctx, func(doc map[string]*models.ContextRecord) error {
		rec, ok := doc[identifier]
		if !ok || rec == nil {
			rec = models.NewContextRecord()
		}
		normalize(rec)
		rec.Append(topic, keep)
		doc[identifier] = rec
		return nil
	})
}

// normalize fills fields a hand-edited or older file may carry as null.
func normalize(rec *models.ContextRecord) {
	if rec.Topics == nil {
		rec.Topics = []models.Topic{}
	}
	if rec.Preferences == nil {
		rec.Preferences = map[string]any{}
	}
}
