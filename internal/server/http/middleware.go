package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/server/auth"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionKey = "session"
	claimsKey  = "claims"
)

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		s.logger.Info(c.Request().Context(), "http request",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"status", c.Response().Status,
			"duration", time.Since(start),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		return nil
	}
}

// lookup resolves the session named by the request cookie. A valid token
// whose session is no longer in the registry, for example after a restart,
// gets a fresh session restored under the same id.
func (s *Server) lookup(c echo.Context) (*session.Session, *auth.Claims, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil, common.ErrorUnauthorized
	}

	claims, err := auth.ParseToken(cookie.Value, s.config.SecretKey)
	if err != nil {
		return nil, nil, err
	}

	if sess, ok := s.deps.Registry.Get(claims.SessionID()); ok {
		if !sess.Authenticated() || sess.Identifier() != claims.Identifier() {
			return nil, nil, common.ErrorUnauthorized
		}
		return sess, claims, nil
	}

	if s.deps.Registry.Revoked(claims.SessionID(), s.deps.Clock.Now()) {
		return nil, nil, common.ErrorUnauthorized
	}

	sess, err := s.deps.Controller.Restore(c.Request().Context(), claims.Identifier())
	if err != nil {
		return nil, nil, err
	}
	s.deps.Registry.Adopt(claims.SessionID(), sess)
	return sess, claims, nil
}

func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, claims, err := s.lookup(c)
		if err != nil {
			if !isAuthError(err) {
				return err
			}
			s.clearCookie(c)
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		c.Set(sessionKey, sess)
		c.Set(claimsKey, claims)
		return next(c)
	}
}

func isAuthError(err error) bool {
	return errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrInvalidToken)
}

func currentSession(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionKey).(*session.Session)
	return sess
}

func (s *Server) setCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.config.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
