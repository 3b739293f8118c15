package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"
)

// getStatus renders the REPL prompt suffix: the logged-in user's email plus
// a warning when the token is about to lapse.
func (a *App) getStatus() string {
	user := a.session.CurrentUser()
	if user == nil {
		return "(guest)"
	}

	s := user.Email
	if exp, ok := a.session.TokenExpiry(context.Background()); ok && time.Until(exp) < 5*time.Minute {
		s += " [expiring]"
	}
	return "(" + s + ")"
}

// Root prints the welcome banner and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to GRADiEnt CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Println("Logged in as", a.session.CurrentUser().Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
