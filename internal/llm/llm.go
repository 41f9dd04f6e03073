// Package llm is the completion client: given a model, a temperature, the
// conversational memory and a new input, it returns the reply text.
package llm

import (
	"context"
	"fmt"
)

type Role string

const (
	RoleSystem Role = "system"
	RoleHuman  Role = "human"
	RoleAI     Role = "ai"
)

// Message is one entry of the conversational memory sent with a request.
type Message struct {
	Role    Role
	Content string
}

type Request struct {
	Model       string
	Temperature float64
	History     []Message
	Input       string
}

// Completer returns the reply for req. Implementations do not retry.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Model describes one selectable completion model.
type Model struct {
	ID   string
	Name string
	Cost string
}

// Label is the text shown in model selectors.
func (m Model) Label() string {
	return fmt.Sprintf("%s %s", m.Name, m.Cost)
}

// Models is the fixed set users may choose from, in display order.
var Models = []Model{
	{ID: "llama-3.1-8b-instant", Name: "Fast (8B)", Cost: "$"},
	{ID: "llama-3.3-70b-versatile", Name: "Smart (70B)", Cost: "$$$"},
	{ID: "llama-3.2-90b-text-preview", Name: "Advanced (90B)", Cost: "$$$$"},
}

func Lookup(id string) (Model, bool) {
	for _, m := range Models {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}
