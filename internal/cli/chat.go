package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
)

// Say sends text as one turn and prints the reply.
func (a *App) Say(ctx context.Context, text string) error {
	reply, err := a.core.Orchestrator.Turn(ctx, a.session, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, reply)
	return nil
}

func (a *App) NewChat(ctx context.Context) error {
	if err := a.session.NewChat(a.core.Conversations.NewID()); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Started a new chat")
	return nil
}

func (a *App) ClearChat(ctx context.Context) error {
	if err := a.session.ClearChat(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Chat cleared")
	return nil
}

// Attach acknowledges a local file by name. The file must exist; its content
// is not read.
func (a *App) Attach(ctx context.Context, path string) error {
	if path == "" {
		return common.ErrMissingFields
	}
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return common.ErrUnsupportedAttachment
	}
	name, err := a.core.Orchestrator.Attach(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "File uploaded:", name)
	return nil
}
