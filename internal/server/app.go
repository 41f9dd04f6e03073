// Package server initializes and runs the web application: it opens the
// configured store, wires the chat services and serves the echo router until
// a termination signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/app"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/config"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/logging"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/session"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
	"github.com/prometheus/client_golang/prometheus"

	web "github.com/Iyyappan-15/Iyyappan-chatbot/internal/server/http"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	core   *app.Core
	web    *web.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	clock := timex.SystemClock{}

	secret := c.SecretKey
	if secret == "" {
		var err error
		if secret, err = common.MakeRandHexString(32); err != nil {
			return nil, err
		}
		logger.Warn(ctx, "no secret key configured, sessions will not survive a restart")
	}

	ttl := c.SessionTTL
	if ttl <= 0 {
		ttl = web.DefaultSessionTTL
	}

	core, err := app.NewCore(ctx, c, logger, clock, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}

	ws, err := web.NewServer(web.Deps{
		Controller:    core.Controller,
		Registry:      session.NewRegistry(ttl),
		Chat:          core.Orchestrator,
		Contexts:      core.Contexts,
		Conversations: core.Conversations,
		Gatherer:      prometheus.DefaultGatherer,
		Clock:         clock,
	}, logger, &web.Config{
		Addr:       c.ListenAddr,
		SecretKey:  []byte(secret),
		SessionTTL: ttl,
	})
	if err != nil {
		_ = core.Close()
		return nil, fmt.Errorf("http server init error: %w", err)
	}

	return &App{config: c, logger: logger, core: core, web: ws}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.web.Start(); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until the parent context is cancelled or a signal arrives, then
// shuts the server down and closes the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.ListenAddr, "backend", app.config.StoreBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.web.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "http shutdown", "error", err)
	}

	wg.Wait()

	if err := app.core.Close(); err != nil {
		app.logger.Error(shutdownCtx, "store close", "error", err)
	}
	app.logger.Info(shutdownCtx, "Stopped")
}
