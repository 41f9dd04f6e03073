// Package app assembles the stores, services and chat orchestrator from a
// Config. Both the web server and the CLI start from a Core.
package app

import (
	"context"
	"fmt"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/chat"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/config"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/cryptox"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/llm"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/logging"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/repomanager"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/services"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/session"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/snapshot"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
	"github.com/prometheus/client_golang/prometheus"
)

type Core struct {
	Repos         repomanager.RepositoryManager
	Credentials   *services.CredentialService
	Contexts      *services.ContextService
	Conversations *services.ConversationService
	Controller    *session.Controller
	Orchestrator  *chat.Orchestrator
	Metrics       *chat.Metrics
}

// newCompleter is a seam for tests.
var newCompleter = func(cfg *config.Config) llm.Completer {
	return llm.NewLangChainCompleter(cfg.LLMBaseURL, cfg.LLMAPIKey)
}

func RepositoryOptions(cfg *config.Config) repomanager.Options {
	return repomanager.Options{
		Backend:  cfg.StoreBackend,
		DataDir:  cfg.DataDir,
		DSN:      cfg.DatabaseDSN,
		BoltPath: cfg.BoltPath,
		S3: snapshot.S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
			Prefix:       cfg.S3Prefix,
		},
	}
}

// NewCore opens the configured store and wires every service on top of it.
// Metrics are registered with reg.
func NewCore(ctx context.Context, cfg *config.Config, logger logging.Logger, clock timex.Clock,
	reg prometheus.Registerer) (*Core, error) {

	hasher, err := cryptox.NewPasswordHasher(cfg.PasswordScheme)
	if err != nil {
		return nil, err
	}

	rm, err := repomanager.Open(ctx, RepositoryOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	if cfg.LLMAPIKey == "" {
		logger.Warn(ctx, "no completion API key configured, replies will fail")
	}

	c := &Core{
		Repos:         rm,
		Credentials:   services.NewCredentialService(rm.Users(), hasher, clock),
		Contexts:      services.NewContextService(rm.Contexts(), clock),
		Conversations: services.NewConversationService(rm.Conversations(), clock),
		Metrics:       chat.NewMetrics(reg),
	}
	c.Controller = session.NewController(c.Credentials, clock, logger)
	c.Orchestrator = chat.NewOrchestrator(c.Contexts, c.Conversations, newCompleter(cfg), c.Metrics, logger)

	logger.Info(ctx, "store opened", "backend", cfg.StoreBackend)
	return c, nil
}

func (c *Core) Close() error {
	return c.Repos.Close()
}
