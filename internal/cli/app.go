package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/app"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/config"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/logging"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/session"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	config  *config.Config
	core    *app.Core
	clock   timex.Clock
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stderr, c.LogLevel)
	clock := timex.SystemClock{}

	core, err := app.NewCore(ctx, c, logger, clock, prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		core:   core,
		clock:  clock,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and closes the store when the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.core.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.Authenticated()
}
