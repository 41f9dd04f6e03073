package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/app"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/chat"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/cryptox"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/llm"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/logging"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/repomanager"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/services"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/session"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoCompleter struct{}

func (echoCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	return "echo: " + req.Input, nil
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	rm, err := repomanager.Open(context.Background(), repomanager.Options{Backend: repomanager.BackendMemory})
	require.NoError(t, err)

	clock := &timex.FixedClock{T: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
	logger := logging.NewNopLogger()
	core := &app.Core{
		Repos:         rm,
		Credentials:   services.NewCredentialService(rm.Users(), cryptox.SHA256Hasher{}, clock),
		Contexts:      services.NewContextService(rm.Contexts(), clock),
		Conversations: services.NewConversationService(rm.Conversations(), clock),
		Metrics:       chat.NewMetrics(prometheus.NewRegistry()),
	}
	core.Controller = session.NewController(core.Credentials, clock, logger)
	core.Orchestrator = chat.NewOrchestrator(core.Contexts, core.Conversations, echoCompleter{}, core.Metrics, logger)

	var out bytes.Buffer
	return &App{core: core, clock: clock, out: &out, reader: bufio.NewReader(strings.NewReader(""))}, &out
}

// stubInputs answers text prompts and password prompts from two queues.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func registerAndLogin(t *testing.T, a *App) {
	t.Helper()
	stubInputs(t, []string{"a@x.com", "y", "a@x.com"}, []string{"secret1", "secret1", "secret1"})
	ctx := context.Background()
	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.Login(ctx))
	require.True(t, a.isLoggedIn())
}

func TestIsLoggedIn(t *testing.T) {
	a := &App{}
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
}

func TestRegister_Validation(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"a@x.com", "n"}, []string{"secret1", "secret1"})
	require.ErrorIs(t, a.Register(ctx), common.ErrTermsNotAccepted)

	stubInputs(t, []string{"a@x.com", "y"}, []string{"secret1", "secret2"})
	require.ErrorIs(t, a.Register(ctx), common.ErrPasswordMismatch)

	stubInputs(t, []string{"a@x.com", "y"}, []string{"abc", "abc"})
	require.ErrorIs(t, a.Register(ctx), common.ErrPasswordTooShort)
}

func TestLogin_Rejected(t *testing.T) {
	a, _ := newTestApp(t)
	registerAndLogin(t, a)
	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())

	stubInputs(t, []string{"a@x.com"}, []string{"wrong"})
	require.ErrorIs(t, a.Login(context.Background()), common.ErrorUnauthorized)
	assert.False(t, a.isLoggedIn())
}

func TestCommands_ChatLifecycle(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()
	registerAndLogin(t, a)
	assert.Equal(t, "(a@x.com llama-3.3-70b-versatile)", a.getStatus())

	out.Reset()
	require.NoError(t, a.Say(ctx, "Hello"))
	assert.Equal(t, "echo: Hello\n", out.String())

	out.Reset()
	require.NoError(t, a.List(ctx))
	id := a.session.View().ConversationID
	assert.Equal(t, "* "+id+"  Hello...\n", out.String())

	out.Reset()
	require.NoError(t, a.Context(ctx))
	assert.Equal(t, "Total Interactions: 1\nLast seen: 0 hours ago\nRecent Topics:\n  - Hello...\n", out.String())

	require.NoError(t, a.ClearChat(ctx))
	assert.Empty(t, a.session.View().History)

	out.Reset()
	require.NoError(t, a.Load(ctx, id))
	assert.Equal(t, "user: Hello\nassistant: echo: Hello\n", out.String())
	assert.Equal(t, id, a.session.View().ConversationID)

	require.ErrorIs(t, a.Load(ctx, "missing"), common.ErrorNotFound)
	require.ErrorIs(t, a.Load(ctx, ""), common.ErrMissingFields)

	require.NoError(t, a.NewChat(ctx))
	assert.Empty(t, a.session.View().History)

	require.NoError(t, a.Delete(ctx, id))
	out.Reset()
	require.NoError(t, a.List(ctx))
	assert.Equal(t, "No recent chats\n", out.String())

	require.ErrorIs(t, a.Say(ctx, "  "), common.ErrEmptyMessage)
}

func TestCommands_Settings(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()
	registerAndLogin(t, a)

	require.NoError(t, a.SetModel(ctx, "llama-3.1-8b-instant"))
	require.ErrorIs(t, a.SetModel(ctx, "gpt"), common.ErrUnknownModel)

	out.Reset()
	require.NoError(t, a.Models(ctx))
	assert.Contains(t, out.String(), "* llama-3.1-8b-instant")
	assert.Contains(t, out.String(), "  llama-3.3-70b-versatile")
	assert.Contains(t, out.String(), "Fast (8B) $")

	out.Reset()
	require.NoError(t, a.Temperature(ctx, "0.3"))
	require.NoError(t, a.Temperature(ctx, ""))
	assert.Equal(t, "Temperature: 0.3\nTemperature: 0.3\n", out.String())

	require.ErrorIs(t, a.Temperature(ctx, "1.5"), common.ErrTemperatureRange)
	require.ErrorIs(t, a.Temperature(ctx, "warm"), common.ErrTemperatureRange)
}

func TestCommands_Attach(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()
	registerAndLogin(t, a)

	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))
	exe := filepath.Join(dir, "tool.exe")
	require.NoError(t, os.WriteFile(exe, []byte("x"), 0o600))

	out.Reset()
	require.NoError(t, a.Attach(ctx, txt))
	assert.Equal(t, "File uploaded: notes.txt\n", out.String())

	require.ErrorIs(t, a.Attach(ctx, exe), common.ErrUnsupportedAttachment)
	require.ErrorIs(t, a.Attach(ctx, filepath.Join(dir, "missing.txt")), common.ErrUnsupportedAttachment)
	require.ErrorIs(t, a.Attach(ctx, dir), common.ErrUnsupportedAttachment)
	assert.Empty(t, a.session.View().History)
}

func TestRoot_RunsREPL(t *testing.T) {
	a, out := newTestApp(t)
	registerAndLogin(t, a)
	capturePrint(t)

	a.reader = bufio.NewReader(strings.NewReader("who is iyyappan\nexit\n"))
	a.Root(context.Background())

	assert.Contains(t, out.String(), "Welcome to Iyyappan's AI Assistant")
	assert.Contains(t, out.String(), "He values clean architecture")
}
