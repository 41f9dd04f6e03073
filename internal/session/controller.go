package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/logging"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
	"github.com/google/uuid"
)

// MinPasswordLength is the shortest password Signup accepts.
const MinPasswordLength = 6

// Credentials is the part of services.CredentialService the controller needs.
type Credentials interface {
	Create(ctx context.Context, identifier, secret string) (bool, error)
	Verify(ctx context.Context, identifier, secret string) (bool, error)
	Profile(ctx context.Context, identifier string) (*models.User, error)
}

type SignupForm struct {
	Identifier  string
	Password    string
	Confirm     string
	AcceptTerms bool
}

type Controller struct {
	creds  Credentials
	clock  timex.Clock
	logger logging.Logger
}

func NewController(creds Credentials, clock timex.Clock, logger logging.Logger) *Controller {
	return &Controller{creds: creds, clock: clock, logger: logger.With("module", "session")}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Login checks the credential and opens a fresh session.
func (c *Controller) Login(ctx context.Context, identifier, secret string) (*Session, error) {
	if blank(identifier) || secret == "" {
		return nil, common.ErrMissingFields
	}

	ok, err := c.creds.Verify(ctx, identifier, secret)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	if !ok {
		c.logger.Info(ctx, "login rejected", "identifier", identifier)
		return nil, common.ErrorUnauthorized
	}

	s, err := c.open(ctx, identifier)
	if err != nil {
		return nil, err
	}
	c.logger.Info(ctx, "login", "identifier", identifier, "session", s.ID)
	return s, nil
}

// Signup validates the form in order and registers the account. It does not
// log the user in.
func (c *Controller) Signup(ctx context.Context, f SignupForm) error {
	switch {
	case blank(f.Identifier) || f.Password == "" || f.Confirm == "":
		return common.ErrMissingFields
	case !f.AcceptTerms:
		return common.ErrTermsNotAccepted
	case f.Password != f.Confirm:
		return common.ErrPasswordMismatch
	case len([]rune(f.Password)) < MinPasswordLength:
		return common.ErrPasswordTooShort
	}

	created, err := c.creds.Create(ctx, f.Identifier, f.Password)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if !created {
		return common.ErrAlreadyExists
	}
	c.logger.Info(ctx, "signup", "identifier", f.Identifier)
	return nil
}

// Restore reopens an empty session for an identifier whose session token is
// still valid but whose in-memory session is gone.
func (c *Controller) Restore(ctx context.Context, identifier string) (*Session, error) {
	s, err := c.open(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}
	c.logger.Debug(ctx, "session restored", "identifier", identifier, "session", s.ID)
	return s, nil
}

// Logout clears every session-scoped value. Nothing persisted changes.
func (c *Controller) Logout(ctx context.Context, s *Session) {
	if s == nil {
		return
	}
	identifier := s.Identifier()
	s.logout()
	c.logger.Info(ctx, "logout", "identifier", identifier, "session", s.ID)
}

func (c *Controller) open(ctx context.Context, identifier string) (*Session, error) {
	prefs := models.DefaultPreferences()
	u, err := c.creds.Profile(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if u != nil {
		prefs = u.Preferences
	}
	return newSession(uuid.NewString(), identifier, prefs, c.clock.Now()), nil
}
