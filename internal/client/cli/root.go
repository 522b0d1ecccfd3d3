package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"
)

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = "signed in "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Welcome to the family tree CLI (type 'help' for commands)")
	}

	a.feed.Start(ctx)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
