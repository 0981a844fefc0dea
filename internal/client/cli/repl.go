package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	ListUsers(ctx context.Context) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context, id int64) error
	DeleteUser(ctx context.Context, id int64) error
	ShowUser(ctx context.Context, id int64) error
}

// runREPL starts a simple read–eval–print loop for the user-management
// client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help           — show available commands
//	list           — reload and print the user table
//	add            — open the create form
//	edit <id>      — open the edit form for a user
//	delete <id>    — ask for confirmation, then delete a user
//	show <id>      — print one user's details
//	exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers render
// their own outcome. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("users %s> ", statusFn()))
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
			printlnFn("Available commands: (l)ist, add, edit <id>, delete <id>, show <id>, exit")

		case "l", "list":
			_ = a.ListUsers(ctx)

		case "add":
			_ = a.AddUser(ctx)

		case "edit":
			if id, ok := parseID(args, "edit"); ok {
				_ = a.EditUser(ctx, id)
			}

		case "delete":
			if id, ok := parseID(args, "delete"); ok {
				_ = a.DeleteUser(ctx, id)
			}

		case "show":
			if id, ok := parseID(args, "show"); ok {
				_ = a.ShowUser(ctx, id)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseID(args []string, cmd string) (int64, bool) {
	if len(args) == 0 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn(fmt.Sprintf("Invalid id %q", args[0]))
		return 0, false
	}
	return id, true
}
