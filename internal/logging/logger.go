// Package logging defines the structured-logging interface used across the
// chat application, with a log/slog implementation.
//
// Arguments after the message are key–value pairs:
//
//	log.Info(ctx, "turn completed", "identifier", id, "conversation", convID)
//
// Components take a Logger and derive a child with With("module", name).
package logging

import "context"

type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

var _ Logger = (*SlogLogger)(nil)
