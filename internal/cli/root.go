package cli

import (
	"bufio"
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.Identifier(), a.session.View().Model)
}

// Root prints the banner and runs the REPL on the app reader until the user
// exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Iyyappan's AI Assistant (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}
