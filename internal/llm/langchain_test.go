package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	reply    string
	err      error
	messages []llms.MessageContent
	opts     llms.CallOptions
}

func (f *fakeModel) GenerateContent(_ context.Context, msgs []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = msgs
	for _, o := range options {
		o(&f.opts)
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.reply == "" {
		return &llms.ContentResponse{}, nil
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func withFakeModels(t *testing.T, fm *fakeModel) *[]string {
	t.Helper()
	orig := newModel
	t.Cleanup(func() { newModel = orig })

	var built []string
	newModel = func(baseURL, token, model string) (llms.Model, error) {
		built = append(built, model)
		return fm, nil
	}
	return &built
}

func TestComplete_MapsHistoryAndTemperature(t *testing.T) {
	fm := &fakeModel{reply: "Hi there"}
	withFakeModels(t, fm)

	c := NewLangChainCompleter("", "key")
	got, err := c.Complete(context.Background(), Request{
		Model:       "llama-3.1-8b-instant",
		Temperature: 0.3,
		History: []Message{
			{Role: RoleHuman, Content: "System: Loading previous context"},
			{Role: RoleAI, Content: "Previous context: a; b"},
		},
		Input: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi there", got)

	require.Len(t, fm.messages, 3)
	assert.Equal(t, llms.ChatMessageTypeHuman, fm.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeAI, fm.messages[1].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, fm.messages[2].Role)
	assert.Equal(t, llms.TextContent{Text: "Hello"}, fm.messages[2].Parts[0])
	assert.InDelta(t, 0.3, fm.opts.Temperature, 1e-9)
}

func TestComplete_CachesClientPerModel(t *testing.T) {
	fm := &fakeModel{reply: "ok"}
	built := withFakeModels(t, fm)

	c := NewLangChainCompleter("", "key")
	for _, model := range []string{"a", "a", "b", "a"} {
		_, err := c.Complete(context.Background(), Request{Model: model, Input: "x"})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "b"}, *built)
}

func TestComplete_Errors(t *testing.T) {
	fm := &fakeModel{err: errors.New("429 too many requests")}
	withFakeModels(t, fm)

	c := NewLangChainCompleter("", "key")
	_, err := c.Complete(context.Background(), Request{Model: "a", Input: "x"})
	require.EqualError(t, err, "429 too many requests")

	fm.err = nil
	_, err = c.Complete(context.Background(), Request{Model: "a", Input: "x"})
	require.ErrorIs(t, err, ErrEmptyReply)
}

func TestComplete_OpenAICompatibleEndpoint(t *testing.T) {
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "llama-3.3-70b-versatile",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hello back"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 2, "total_tokens": 3}
		}`))
	}))
	defer srv.Close()

	c := NewLangChainCompleter(srv.URL, "key")
	got, err := c.Complete(context.Background(), Request{Model: "llama-3.3-70b-versatile", Temperature: 0.7, Input: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "Hello back", got)
	assert.Equal(t, "llama-3.3-70b-versatile", body["model"])
	assert.NotEmpty(t, body["messages"])
}

func TestLookup(t *testing.T) {
	m, ok := Lookup("llama-3.3-70b-versatile")
	require.True(t, ok)
	assert.Equal(t, "Smart (70B) $$$", m.Label())

	_, ok = Lookup("gpt-4")
	assert.False(t, ok)
	assert.Len(t, Models, 3)
}
