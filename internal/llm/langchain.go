package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

var ErrEmptyReply = errors.New("completion returned no choices")

// newModel is a seam for tests.
var newModel = func(baseURL, token, model string) (llms.Model, error) {
	return openai.New(
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
		openai.WithToken(token),
	)
}

// LangChainCompleter talks to an OpenAI-compatible chat endpoint through
// langchaingo. One client is built per model and reused.
type LangChainCompleter struct {
	baseURL string
	token   string

	mu      sync.Mutex
	clients map[string]llms.Model
}

func NewLangChainCompleter(baseURL, token string) *LangChainCompleter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &LangChainCompleter{baseURL: baseURL, token: token, clients: make(map[string]llms.Model)}
}

func (c *LangChainCompleter) client(model string) (llms.Model, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.clients[model]; ok {
		return m, nil
	}

	m, err := newModel(c.baseURL, c.token, model)
	if err != nil {
		return nil, fmt.Errorf("creating client for %s: %w", model, err)
	}
	c.clients[model] = m
	return m, nil
}

func (c *LangChainCompleter) Complete(ctx context.Context, req Request) (string, error) {
	m, err := c.client(req.Model)
	if err != nil {
		return "", err
	}

	resp, err := m.GenerateContent(ctx, toMessageContent(req), llms.WithTemperature(req.Temperature))
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	return resp.Choices[0].Content, nil
}

func toMessageContent(req Request) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(req.History)+1)
	for _, m := range req.History {
		out = append(out, llms.TextParts(chatType(m.Role), m.Content))
	}
	return append(out, llms.TextParts(llms.ChatMessageTypeHuman, req.Input))
}

func chatType(r Role) llms.ChatMessageType {
	switch r {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAI:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
