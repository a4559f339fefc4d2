package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Fav(ctx context.Context, args []string) error
	Favs(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Dark(ctx context.Context, args []string) error
	Sounds(ctx context.Context, args []string) error
	Prefs(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the CourseMate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help            - show available commands
//	  - register        - create an account (also logs in)
//	  - login           - authenticate
//	  - search [query]  - search the course catalog
//	  - exit | quit     - leave the program
//
//	Logged in, additionally:
//	  - fav <n>         - toggle favourite for result n of the last search
//	  - favs            - list favourited courses
//	  - profile         - show the current profile
//	  - edit            - edit the profile
//	  - logout          - log out
//
//	Always:
//	  - dark on|off     - dark mode
//	  - sounds on|off   - app sounds
//	  - prefs           - show preference flags
//
// Errors returned by command handlers are ignored here; handlers render
// their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		prompt := "cm>"
		if st := statusFn(); st != "" {
			prompt += " " + st
		}
		printlnFn(prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search, fav <n>, favs, profile, edit, dark on|off, sounds on|off, prefs, logout, exit")
			} else {
				printlnFn("Available commands: register, login, search, dark on|off, sounds on|off, prefs, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "s", "search":
			_ = a.Search(ctx, args)

		case "fav":
			_ = a.Fav(ctx, args)

		case "favs":
			_ = a.Favs(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "dark":
			_ = a.Dark(ctx, args)

		case "sounds":
			_ = a.Sounds(ctx, args)

		case "prefs":
			_ = a.Prefs(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
