package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/chat"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/llm"
)

// Models prints the selectable models, marking the current one.
func (a *App) Models(ctx context.Context) error {
	current := a.session.View().Model
	for _, m := range llm.Models {
		marker := " "
		if m.ID == current {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-28s %s\n", marker, m.ID, m.Label())
	}
	return nil
}

func (a *App) SetModel(ctx context.Context, id string) error {
	if err := a.session.SetModel(id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Model:", id)
	return nil
}

// Temperature prints the current temperature, or sets it when value is given.
func (a *App) Temperature(ctx context.Context, value string) error {
	if value == "" {
		fmt.Fprintf(a.out, "Temperature: %.1f\n", a.session.View().Temperature)
		return nil
	}
	t, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return common.ErrTemperatureRange
	}
	if err := a.session.SetTemperature(t); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Temperature: %.1f\n", t)
	return nil
}

// Context prints the context memory summary.
func (a *App) Context(ctx context.Context) error {
	rec, err := a.core.Contexts.Get(ctx, a.session.Identifier())
	if err != nil {
		return err
	}
	s := chat.Summarize(rec, a.clock.Now())
	fmt.Fprintln(a.out, "Total Interactions:", s.InteractionCount)
	if s.LastSeen != "" {
		fmt.Fprintln(a.out, s.LastSeen)
	}
	if len(s.RecentTopics) > 0 {
		fmt.Fprintln(a.out, "Recent Topics:")
		for _, t := range s.RecentTopics {
			fmt.Fprintln(a.out, "  -", t)
		}
	}
	return nil
}
