package contexts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/dbx"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
)

// SQLRepository stores counters in user_contexts and one row per topic in
// context_topics. Topic order is the insertion order of context_topics.id.
type SQLRepository struct {
	db      *sql.DB
	dialect dbx.Dialect
}

func NewSQLRepository(db *sql.DB, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Get(ctx context.Context, identifier string) (*models.ContextRecord, error) {
	rec := models.NewContextRecord()

	var last sql.NullTime
	err := r.db.QueryRowContext(ctx,
		dbx.Rebind(r.dialect, `SELECT interaction_count, last_interaction FROM user_contexts WHERE identifier = ?`),
		identifier,
	).Scan(&rec.InteractionCount, &last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	if last.Valid {
		t := last.Time
		rec.LastInteraction = &t
	}

	rows, err := r.db.QueryContext(ctx,
		dbx.Rebind(r.dialect, `SELECT message, created_at FROM context_topics WHERE identifier = ? ORDER BY id ASC`),
		identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Message, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
		}
		rec.Topics = append(rec.Topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	return rec, nil
}

func (r *SQLRepository) Append(ctx context.Context, identifier string, topic models.Topic, keep int) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			dbx.Rebind(r.dialect, `INSERT INTO context_topics (identifier, message, created_at) VALUES (?, ?, ?)`),
			identifier, topic.Message, topic.Timestamp); err != nil {
			return err
		}

		if keep > 0 {
			if _, err := tx.ExecContext(ctx,
				dbx.Rebind(r.dialect, `DELETE FROM context_topics WHERE identifier = ? AND id NOT IN (
					SELECT id FROM context_topics WHERE identifier = ? ORDER BY id DESC LIMIT ?)`),
				identifier, identifier, keep); err != nil {
				return err
			}
		}

		_, err := tx.ExecContext(ctx,
			dbx.Rebind(r.dialect, `INSERT INTO user_contexts (identifier, interaction_count, last_interaction)
				VALUES (?, 1, ?)
				ON CONFLICT (identifier) DO UPDATE SET
					interaction_count = user_contexts.interaction_count + 1,
					last_interaction = excluded.last_interaction`),
			identifier, topic.Timestamp)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	return nil
}
