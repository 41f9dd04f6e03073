package cli

import (
	"context"
	"fmt"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/chat"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
)

// List prints the conversations of the last seven days with their ids.
func (a *App) List(ctx context.Context) error {
	convs, err := a.core.Conversations.ListRecent(ctx, a.session.Identifier())
	if err != nil {
		return err
	}
	if len(convs) == 0 {
		fmt.Fprintln(a.out, "No recent chats")
		return nil
	}

	active := a.session.View().ConversationID
	for _, c := range convs {
		marker := " "
		if c.ID == active {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s\n", marker, c.ID, chat.PreviewTitle(c.Title))
	}
	return nil
}

// Load makes conversation id active and prints its transcript.
func (a *App) Load(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrMissingFields
	}
	conv, err := a.core.Conversations.Get(ctx, a.session.Identifier(), id)
	if err != nil {
		return err
	}
	if err := a.session.LoadConversation(conv); err != nil {
		return err
	}
	for _, m := range conv.Messages {
		fmt.Fprintf(a.out, "%s: %s\n", m.Role, m.Text)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrMissingFields
	}
	if err := a.core.Conversations.Delete(ctx, a.session.Identifier(), id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted", id)
	return nil
}
