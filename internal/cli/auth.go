package cli

import (
	"context"
	"fmt"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, password, confirmation and terms agreement and
// creates the account. It does not log the user in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	terms, err := getSimpleText(a.reader, "I agree to the terms (y/N)", a.out)
	if err != nil {
		return err
	}

	if err := a.core.Controller.Signup(ctx, session.SignupForm{
		Identifier:  email,
		Password:    string(password),
		Confirm:     string(confirm),
		AcceptTerms: confirmed(terms),
	}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created! Please sign in.")
	return nil
}

// Login prompts for credentials and opens a session. A previous session is
// logged out first.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.core.Controller.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	if a.session != nil {
		a.core.Controller.Logout(ctx, a.session)
	}
	a.session = s
	fmt.Fprintln(a.out, "Login successful!")
	return nil
}

// Logout drops the session. Stored data is untouched.
func (a *App) Logout(ctx context.Context) error {
	a.core.Controller.Logout(ctx, a.session)
	a.session = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
