package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Provision(ctx context.Context) error
	Pending(ctx context.Context) error
	Reissue(ctx context.Context, accountID string) error
	CreateTenant(ctx context.Context) error
	Tenants(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from scanner until EOF or "exit".
//
//	Not logged in:
//	  - help, login, exit | quit
//
//	Logged in:
//	  - help, whoami, provision, pending, reissue <account-id>,
//	    create-tenant, tenants, logout, exit | quit
//
// Handlers report their own errors, so results are ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("unictl %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, provision, pending, reissue <account-id>, create-tenant, tenants, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "provision":
			_ = a.Provision(ctx)

		case "pending":
			_ = a.Pending(ctx)

		case "reissue":
			if len(args) == 0 {
				printlnFn("Usage: reissue <account-id>")
				continue
			}
			_ = a.Reissue(ctx, args[0])

		case "create-tenant":
			_ = a.CreateTenant(ctx)

		case "tenants":
			_ = a.Tenants(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Root prompts for a login and then runs the REPL over the app's input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to unictl (type 'help' for commands)")

	_ = a.Login(ctx)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}
