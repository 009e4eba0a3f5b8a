package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/crmkeeper/internal/common"
)

// execIface defines the command surface the REPL needs.
// The real App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	List(ctx context.Context, kind string) error
	Add(ctx context.Context, kind string) error
	Update(ctx context.Context, kind string) error
	Delete(ctx context.Context, kind string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: dashboard, list <kind>, add <kind>, update <kind>, delete <kind>, whoami, logout, exit\n" +
		"Kinds: applications, tasks, projects, courses"
)

// runREPL reads a line, takes its first token as the command and dispatches
// to a. It returns on EOF, on "exit"/"quit", or when ctx is done.
//
// Handler errors are reported on one line and never stop the loop; handlers
// print their own friendly messages for the expected failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "crm %s> ", statusFn())

		line, err := readLine(r)
		if err != nil {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		kind := ""
		if len(args) > 0 {
			kind = args[0]
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "dashboard", "d":
			cmdErr = a.Dashboard(ctx)

		case "l", "list":
			cmdErr = a.List(ctx, kind)

		case "add":
			cmdErr = a.Add(ctx, kind)

		case "update", "edit":
			cmdErr = a.Update(ctx, kind)

		case "delete", "rm":
			cmdErr = a.Delete(ctx, kind)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil && !isReported(cmdErr) {
			fmt.Fprintln(out, "Error:", cmdErr)
		}
	}
}

// isReported tells whether the handler already explained err to the user.
func isReported(err error) bool {
	for _, e := range []error{
		common.ErrNotLoggedIn,
		common.ErrUsernameTaken,
		common.ErrInvalidCredentials,
		common.ErrorNotFound,
		common.ErrUnknownKind,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
