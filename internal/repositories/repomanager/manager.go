// Package repomanager opens the configured store backend and vends the
// users, contexts and conversations repositories bound to it.
package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/dbx"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/contexts"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/conversations"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/users"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/snapshot"
)

// Backend kinds accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendBolt     = "bolt"
	BackendS3       = "s3"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

var ErrUnknownBackend = errors.New("unknown store backend")

type RepositoryManager interface {
	Users() users.Repository
	Contexts() contexts.Repository
	Conversations() conversations.Repository
	Close() error
}

// Options selects and configures one backend. Only the fields of the chosen
// kind are read.
type Options struct {
	Backend  string
	DataDir  string
	DSN      string
	BoltPath string
	S3       snapshot.S3Options
}

// newS3Client is a seam for tests.
var newS3Client = func(ctx context.Context, o snapshot.S3Options) (snapshot.ObjectAPI, error) {
	return snapshot.NewS3Client(ctx, o)
}

// Open builds the repositories for o.Backend. SQL backends are migrated
// before Open returns.
func Open(ctx context.Context, o Options) (RepositoryManager, error) {
	switch o.Backend {
	case BackendMemory:
		return NewDocumentRepositoryManager(snapshot.NewMemoryBackend()), nil

	case "", BackendFile:
		b, err := snapshot.NewFileBackend(o.DataDir)
		if err != nil {
			return nil, fmt.Errorf("file backend: %w", err)
		}
		return NewDocumentRepositoryManager(b), nil

	case BackendBolt:
		path := o.BoltPath
		if path == "" {
			path = filepath.Join(o.DataDir, "chat.db")
		}
		b, err := snapshot.NewBoltBackend(path)
		if err != nil {
			return nil, fmt.Errorf("bolt backend: %w", err)
		}
		return NewDocumentRepositoryManager(b), nil

	case BackendS3:
		client, err := newS3Client(ctx, o.S3)
		if err != nil {
			return nil, fmt.Errorf("s3 backend: %w", err)
		}
		return NewDocumentRepositoryManager(snapshot.NewS3Backend(client, o.S3.Bucket, o.S3.Prefix)), nil

	case BackendSQLite:
		dsn := o.DSN
		if dsn == "" {
			dsn = filepath.Join(o.DataDir, "chat.sqlite")
		}
		return openSQL(ctx, dbx.DialectSQLite, dsn)

	case BackendPostgres:
		return openSQL(ctx, dbx.DialectPostgres, o.DSN)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, o.Backend)
}

func openSQL(ctx context.Context, d dbx.Dialect, dsn string) (RepositoryManager, error) {
	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if d == dbx.DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m := NewSQLRepositoryManager(db, d)
	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return m, nil
}
