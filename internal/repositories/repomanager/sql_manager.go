package repomanager

import (
	"context"
	"database/sql"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/dbx"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/migrations"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/contexts"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/conversations"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager vends SQL-backed repositories sharing one *sql.DB and
// exposes a schema migration hook.
type SQLRepositoryManager struct {
	db      *sql.DB
	dialect dbx.Dialect
}

func NewSQLRepositoryManager(db *sql.DB, d dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{db: db, dialect: d}
}

func (m *SQLRepositoryManager) Users() users.Repository {
	return users.NewSQLRepository(m.db, m.dialect)
}

func (m *SQLRepositoryManager) Contexts() contexts.Repository {
	return contexts.NewSQLRepository(m.db, m.dialect)
}

func (m *SQLRepositoryManager) Conversations() conversations.Repository {
	return conversations.NewSQLRepository(m.db, m.dialect)
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations of the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(string(m.dialect)); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, migrations.Dir(string(m.dialect)))
}
