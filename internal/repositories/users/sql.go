package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/dbx"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) error {
	query := dbx.Rebind(r.dialect,
		`INSERT INTO users (identifier, password_hash, created_at, model, temperature, theme)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (identifier) DO NOTHING`)

	res, err := r.db.ExecContext(ctx, query,
		user.Identifier, user.PasswordHash, user.CreatedAt,
		user.Preferences.Model, user.Preferences.Temperature, user.Preferences.Theme)
	if err != nil {
		return fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	if n == 0 {
		return common.ErrAlreadyExists
	}
	return nil
}

func (r *SQLRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	query := dbx.Rebind(r.dialect,
		`SELECT identifier, password_hash, created_at, model, temperature, theme FROM users
		 WHERE identifier = ?`)

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, identifier).Scan(
		&u.Identifier, &u.PasswordHash, &u.CreatedAt,
		&u.Preferences.Model, &u.Preferences.Temperature, &u.Preferences.Theme)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: db error: %v", common.ErrStorage, err)
	}
	return u, nil
}
