package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Pay(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Report(ctx context.Context, args []string) error
	Months(ctx context.Context, args []string) error
	Positions(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, whoami, exit"
	helpLoggedIn  = "Available commands: (l)ist, add, edit <id>, pay <id>, delete <id>, report, months, positions, export [xlsx|csv|pdf], whoami, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// Record and report commands are refused until a user is logged in. Errors
// returned by handlers are printed and the loop continues. It returns on end
// of input or on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("paybook %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if handled := dispatch(ctx, a, cmd, args); !handled {
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// dispatch runs one command and reports whether cmd was recognized.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	var handler func(context.Context, []string) error
	authRequired := true

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return true
	case "register":
		handler, authRequired = a.Register, false
	case "login":
		handler, authRequired = a.Login, false
	case "whoami":
		handler, authRequired = a.WhoAmI, false
	case "logout":
		handler = a.Logout
	case "l", "list":
		handler = a.List
	case "add":
		handler = a.Add
	case "edit":
		handler = a.Edit
	case "pay":
		handler = a.Pay
	case "delete", "rm":
		handler = a.Delete
	case "report":
		handler = a.Report
	case "months":
		handler = a.Months
	case "positions":
		handler = a.Positions
	case "export":
		handler = a.Export
	default:
		return false
	}

	if authRequired && !a.isLoggedIn() {
		printlnFn("Please log in first (login or register)")
		return true
	}
	if err := handler(ctx, args); err != nil {
		printlnFn("Error:", userMessage(err))
	}
	return true
}
