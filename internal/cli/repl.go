package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Say(ctx context.Context, text string) error
	NewChat(ctx context.Context) error
	ClearChat(ctx context.Context) error
	List(ctx context.Context) error
	Load(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Models(ctx context.Context) error
	SetModel(ctx context.Context, id string) error
	Temperature(ctx context.Context, value string) error
	Context(ctx context.Context) error
	Attach(ctx context.Context, path string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: say <text>, new, clear, (l)ist, load <id>, delete <id>, " +
		"models, model <id>, temp [value], context, attach <file>, logout, exit"
)

// runREPL starts a read–eval–print loop for the chat CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. While logged in, a line that is
// not a command is sent to the assistant as is. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             show available commands
//	  - register         create an account
//	  - login            authenticate
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - say <text>       send text, even if it starts with a command word
//	  - new              start a new chat
//	  - clear            clear the current chat
//	  - list             list chats of the last 7 days
//	  - load <id>        continue a stored chat
//	  - delete <id>      delete a stored chat
//	  - models           list models
//	  - model <id>       select a model
//	  - temp [value]     show or set the temperature
//	  - context          show the context memory
//	  - attach <file>    acknowledge a file
//	  - logout           log out
//	  - exit | quit      leave the program
//
// Errors returned by command handlers are printed as user messages and the
// loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", common.UserMessage(err))
		}
	}

	for {
		printlnFn(fmt.Sprintf("chat %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue

		case "register":
			report(a.Register(ctx))
			continue

		case "login":
			report(a.Login(ctx))
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first (type 'help' for commands)")
			continue
		}

		switch cmd {
		case "say":
			report(a.Say(ctx, rest))
		case "new":
			report(a.NewChat(ctx))
		case "clear":
			report(a.ClearChat(ctx))
		case "l", "list":
			report(a.List(ctx))
		case "load":
			report(a.Load(ctx, rest))
		case "delete":
			report(a.Delete(ctx, rest))
		case "models":
			report(a.Models(ctx))
		case "model":
			report(a.SetModel(ctx, rest))
		case "temp":
			report(a.Temperature(ctx, rest))
		case "context":
			report(a.Context(ctx))
		case "attach":
			report(a.Attach(ctx, rest))
		case "logout":
			report(a.Logout(ctx))
		default:
			report(a.Say(ctx, line))
		}
	}
}
