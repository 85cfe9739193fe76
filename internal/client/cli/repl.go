package cli

import (
	"context"
	"strings"
)

const (
	helpLoggedOut = "Available commands: register, login, ping, help, exit"
	helpLoggedIn  = "Available commands: (l)ist, search <site>, add, update <id>, delete <id>, logout, ping, help, exit"
)

func (a *App) prompt() string {
	if a.isLoggedIn() {
		return "pv (" + a.userName + ")> "
	}
	return "pv> "
}

// repl reads commands until "exit" or end of input.
func (a *App) repl(ctx context.Context) {
	a.printf("Welcome to passvault (type 'help' for commands)\n")

	for {
		a.printf("%s", a.prompt())

		line, err := a.reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if !a.dispatch(ctx, line) {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// dispatch runs one command line; it returns false when the REPL should stop.
func (a *App) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "exit", "quit":
		return false
	case "help":
		if a.isLoggedIn() {
			a.printf("%s\n", helpLoggedIn)
		} else {
			a.printf("%s\n", helpLoggedOut)
		}
	case "ping":
		a.Ping(ctx)
	case "register":
		a.Register(ctx)
	case "login":
		a.Login(ctx)
	default:
		if !a.isLoggedIn() {
			a.printf("please login first (type 'help' for commands)\n")
			return true
		}
		a.dispatchAuthed(ctx, cmd, args)
	}
	return true
}

func (a *App) dispatchAuthed(ctx context.Context, cmd string, args []string) {
	arg := strings.Join(args, " ")

	switch cmd {
	case "list", "l":
		a.List(ctx)
	case "search":
		a.Search(ctx, arg)
	case "add":
		a.Add(ctx)
	case "update":
		a.Update(ctx, arg)
	case "delete":
		a.Delete(ctx, arg)
	case "logout":
		a.Logout(ctx)
	default:
		a.printf("unknown command %q (type 'help' for commands)\n", cmd)
	}
}
