package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/chat"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/server/auth"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/session"
	"github.com/labstack/echo/v4"
)

const signupNotice = "Account created! Please sign in."

func statusFor(err error) int {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleIndex(c echo.Context) error {
	if _, _, err := s.lookup(c); err == nil {
		return c.Redirect(http.StatusSeeOther, "/chat")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) handleLoginPage(c echo.Context) error {
	if _, _, err := s.lookup(c); err == nil {
		return c.Redirect(http.StatusSeeOther, "/chat")
	}
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

// renderLoginError redraws the login page with err, keeping what the user typed.
func (s *Server) renderLoginError(c echo.Context, page loginPage, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "auth request failed", "error", err)
	}
	page.Error = common.UserMessage(err)
	return c.Render(status, "login.html", page)
}

func (s *Server) handleLogin(c echo.Context) error {
	email := c.FormValue("email")
	sess, err := s.deps.Controller.Login(c.Request().Context(), email, c.FormValue("password"))
	if err != nil {
		return s.renderLoginError(c, loginPage{Email: email}, err)
	}

	token, err := auth.GenerateToken(sess.ID, sess.Identifier(), s.config.SecretKey, s.config.SessionTTL)
	if err != nil {
		return err
	}
	s.deps.Registry.Put(sess)
	s.setCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/chat")
}

func (s *Server) handleSignup(c echo.Context) error {
	form := session.SignupForm{
		Identifier:  c.FormValue("email"),
		Password:    c.FormValue("password"),
		Confirm:     c.FormValue("confirm"),
		AcceptTerms: c.FormValue("terms") != "",
	}
	if err := s.deps.Controller.Signup(c.Request().Context(), form); err != nil {
		return s.renderLoginError(c, loginPage{SignupEmail: form.Identifier}, err)
	}
	return c.Render(http.StatusOK, "login.html", loginPage{Email: form.Identifier, Notice: signupNotice})
}

func (s *Server) handleLogout(c echo.Context) error {
	sess, claims, err := s.lookup(c)
	if err == nil {
		s.deps.Controller.Logout(c.Request().Context(), sess)
		until := s.deps.Clock.Now().Add(s.config.SessionTTL)
		if claims.ExpiresAt != nil {
			until = claims.ExpiresAt.Time
		}
		s.deps.Registry.Revoke(claims.SessionID(), until)
	}
	s.clearCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// renderChat draws the chat page for sess. Sidebar lookups that fail are
// logged and left empty so the transcript still shows.
func (s *Server) renderChat(c echo.Context, sess *session.Session, status int, notice string, cause error) error {
	ctx := c.Request().Context()
	v := sess.View()

	page := chatPage{
		Identifier:  v.Identifier,
		History:     v.History,
		Models:      modelOptions(v.Model),
		Temperature: v.Temperature,
		Notice:      notice,
		Error:       common.UserMessage(cause),
	}

	if rec, err := s.deps.Contexts.Get(ctx, v.Identifier); err != nil {
		s.logger.Warn(ctx, "load context failed", "identifier", v.Identifier, "error", err)
	} else {
		page.Summary = chat.Summarize(rec, s.deps.Clock.Now())
	}

	if convs, err := s.deps.Conversations.ListRecent(ctx, v.Identifier); err != nil {
		s.logger.Warn(ctx, "list conversations failed", "identifier", v.Identifier, "error", err)
	} else {
		page.Conversations = conversationItems(convs)
	}

	return c.Render(status, "chat.html", page)
}

// afterAction redirects back to the chat page on success and renders the
// page with the error otherwise.
func (s *Server) afterAction(c echo.Context, sess *session.Session, err error) error {
	if err == nil {
		return c.Redirect(http.StatusSeeOther, "/chat")
	}
	if errors.Is(err, common.ErrorUnauthorized) {
		s.clearCookie(c)
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "chat request failed",
			"identifier", sess.Identifier(), "path", c.Path(), "error", err)
	}
	return s.renderChat(c, sess, status, "", err)
}

func (s *Server) handleChat(c echo.Context) error {
	return s.renderChat(c, currentSession(c), http.StatusOK, "", nil)
}

func (s *Server) handleMessage(c echo.Context) error {
	sess := currentSession(c)
	_, err := s.deps.Chat.Turn(c.Request().Context(), sess, c.FormValue("message"))
	return s.afterAction(c, sess, err)
}

func (s *Server) handleNewChat(c echo.Context) error {
	sess := currentSession(c)
	return s.afterAction(c, sess, sess.NewChat(s.deps.Conversations.NewID()))
}

func (s *Server) handleClearChat(c echo.Context) error {
	sess := currentSession(c)
	return s.afterAction(c, sess, sess.ClearChat())
}

func (s *Server) handleSettings(c echo.Context) error {
	sess := currentSession(c)

	if model := c.FormValue("model"); model != "" {
		if err := sess.SetModel(model); err != nil {
			return s.afterAction(c, sess, err)
		}
	}

	if raw := strings.TrimSpace(c.FormValue("temperature")); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return s.afterAction(c, sess, common.ErrTemperatureRange)
		}
		if err := sess.SetTemperature(t); err != nil {
			return s.afterAction(c, sess, err)
		}
	}

	return s.afterAction(c, sess, nil)
}

func (s *Server) handleLoadConversation(c echo.Context) error {
	sess := currentSession(c)
	conv, err := s.deps.Conversations.Get(c.Request().Context(), sess.Identifier(), c.Param("id"))
	if err != nil {
		return s.afterAction(c, sess, err)
	}
	return s.afterAction(c, sess, sess.LoadConversation(conv))
}

func (s *Server) handleDeleteConversation(c echo.Context) error {
	sess := currentSession(c)
	err := s.deps.Conversations.Delete(c.Request().Context(), sess.Identifier(), c.Param("id"))
	return s.afterAction(c, sess, err)
}

func (s *Server) handleUpload(c echo.Context) error {
	sess := currentSession(c)
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/chat")
	}

	name, err := s.deps.Chat.Attach(fh.Filename)
	if err != nil {
		return s.afterAction(c, sess, err)
	}
	return s.renderChat(c, sess, http.StatusOK, "File uploaded: "+name, nil)
}
