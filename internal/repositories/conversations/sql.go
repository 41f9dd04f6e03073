package conversations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/dbx"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
)

// SQLRepository keeps one row per conversation; messages are a JSON array of
// [role, text] pairs. Insertion order is the seq column.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

const selectColumns = `SELECT id, title, messages, created_at, updated_at FROM conversations`

type scanner interface {
	Scan(dest ...any) error
}

func scanConversation(s scanner) (models.Conversation, error) {
	var (
		c   models.Conversation
		raw string
	)
	if err := s.Scan(&c.ID, &c.Title, &raw, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return c, err
	}
	if err := json.Unmarshal([]byte(raw), &c.Messages); err != nil {
		return c, fmt.Errorf("decode messages of %s: %w", c.ID, err)
	}
	return c, nil
}

func (r *SQLRepository) List(ctx context.Context, identifier string) ([]models.Conversation, error) {
	rows, err := r.db.QueryContext(ctx,
		dbx.Rebind(r.dialect, selectColumns+` WHERE identifier = ? ORDER BY seq ASC`), identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	var out []models.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	return out, nil
}

func (r *SQLRepository) Get(ctx context.Context, identifier, id string) (*models.Conversation, error) {
	row := r.db.QueryRowContext(ctx,
		dbx.Rebind(r.dialect, selectColumns+` WHERE identifier = ? AND id = ?`), identifier, id)

	c, err := scanConversation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	return &c, nil
}

func (r *SQLRepository) Save(ctx context.Context, identifier string, conv models.Conversation) error {
	raw, err := json.Marshal(conv.Messages)
	if err != nil {
		return fmt.Errorf("%w: encode messages: %v", common.ErrStorage, err)
	}

	_, err = r.db.ExecContext(ctx,
		dbx.Rebind(r.dialect, `INSERT INTO conversations (identifier, id, title, messages, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (identifier, id) DO UPDATE SET
				messages = excluded.messages,
				updated_at = excluded.updated_at`),
		identifier, conv.ID, conv.Title, string(raw), conv.CreatedAt, conv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, identifier, id string) error {
	_, err := r.db.ExecContext(ctx,
		dbx.Rebind(r.dialect, `DELETE FROM conversations WHERE identifier = ? AND id = ?`), identifier, id)
	if err != nil {
		return fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	return nil
}
