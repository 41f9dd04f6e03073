// Package snapshot stores each durable collection (users, context,
// conversations) as one JSON document and hands out typed read-modify-write
// access to it.
//
// Backends only move bytes: the local filesystem (atomic rename), a bbolt
// file, or an S3 bucket. Collection serialises mutations in-process; the
// bolt backend additionally locks the file against other processes.
package snapshot

import (
	"context"
)

// Collection names.
const (
	Users         = "users"
	Context       = "context"
	Conversations = "conversations"
)

// Backend persists whole collection snapshots.
type Backend interface {
	// Load returns the stored snapshot; ok is false when nothing was stored yet.
	Load(ctx context.Context, collection string) (data []byte, ok bool, err error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, collection string, data []byte) error
	Close() error
}
