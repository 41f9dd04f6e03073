// Package http serves the browser surface of the chat application.
package http

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/logging"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/session"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html static/*
var assets embed.FS

// CookieName is the cookie holding the signed session token.
const CookieName = "chat_session"

// DefaultSessionTTL applies when Config.SessionTTL is unset.
const DefaultSessionTTL = 24 * time.Hour

// ContextReader is the part of services.ContextService the pages need.
type ContextReader interface {
	Get(ctx context.Context, identifier string) (*models.ContextRecord, error)
}

// ConversationBrowser is the part of services.ConversationService the pages need.
type ConversationBrowser interface {
	NewID() string
	ListRecent(ctx context.Context, identifier string) ([]models.Conversation, error)
	Get(ctx context.Context, identifier, id string) (*models.Conversation, error)
	Delete(ctx context.Context, identifier, id string) error
}

// Chatter runs turns and acknowledges uploads. *chat.Orchestrator satisfies it.
type Chatter interface {
	Turn(ctx context.Context, s *session.Session, m string) (string, error)
	Attach(name string) (string, error)
}

// Deps are the collaborators the handlers call into.
type Deps struct {
	Controller    *session.Controller
	Registry      *session.Registry
	Chat          Chatter
	Contexts      ContextReader
	Conversations ConversationBrowser
	// Gatherer backs /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	Clock    timex.Clock
}

// Config holds HTTP server configuration.
type Config struct {
	Addr       string
	SecretKey  []byte
	SessionTTL time.Duration
}

type Server struct {
	echo   *echo.Echo
	deps   Deps
	logger logging.Logger
	config *Config
}

type templateRenderer struct {
	t *template.Template
}

func (r *templateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}

// NewServer creates a new HTTP server.
func NewServer(deps Deps, logger logging.Logger, cfg *Config) (*Server, error) {
	switch {
	case deps.Controller == nil || deps.Registry == nil:
		return nil, errors.New("session controller and registry are required")
	case deps.Chat == nil || deps.Contexts == nil || deps.Conversations == nil:
		return nil, errors.New("chat, context and conversation services are required")
	case logger == nil:
		return nil, errors.New("logger is required")
	case cfg == nil || len(cfg.SecretKey) == 0:
		return nil, errors.New("secret key is required")
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	if deps.Clock == nil {
		deps.Clock = timex.SystemClock{}
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	tmpl, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = &templateRenderer{t: tmpl}

	s := &Server{
		echo:   e,
		deps:   deps,
		logger: logger.With("module", "http"),
		config: cfg,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.requestLogger)

	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{})))
	s.echo.StaticFS("/static", echo.MustSubFS(assets, "static"))

	s.echo.GET("/", s.handleIndex)
	s.echo.GET("/login", s.handleLoginPage)
	s.echo.POST("/login", s.handleLogin)
	s.echo.POST("/signup", s.handleSignup)
	s.echo.POST("/logout", s.handleLogout)

	g := s.echo.Group("/chat", s.requireSession)
	g.GET("", s.handleChat)
	g.POST("/message", s.handleMessage)
	g.POST("/new", s.handleNewChat)
	g.POST("/clear", s.handleClearChat)
	g.POST("/settings", s.handleSettings)
	g.POST("/conversations/:id/load", s.handleLoadConversation)
	g.POST("/conversations/:id/delete", s.handleDeleteConversation)
	g.POST("/upload", s.handleUpload)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving on the configured address until Shutdown.
func (s *Server) Start() error {
	s.logger.Info(context.Background(), "starting http server", "addr", s.config.Addr)
	err := s.echo.Start(s.config.Addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "shutting down http server")
	return s.echo.Shutdown(ctx)
}
