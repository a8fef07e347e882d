package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Recover(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Logout(ctx context.Context) error

	New(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Conflicts(ctx context.Context) error
	Resolve(ctx context.Context, args []string) error

	Sync(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a until EOF,
// "exit" or "quit". Handlers report their own errors; the loop keeps going.
//
//	Not logged in: help, register, login, recover, exit
//	Logged in:     help, new, edit <id>, show <id>, (l)ist, delete <id>,
//	               conflicts, resolve <id> [policy], sync, status,
//	               passwd, logout, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("notto (%s) > ", statusFn()))
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
				printlnFn("Available commands: new, edit, show, (l)ist, delete, conflicts, resolve, sync, status, passwd, logout, exit")
			} else {
				printlnFn("Available commands: register, login, recover, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "recover":
			_ = a.Recover(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !a.isLoggedIn() {
				if isSessionCommand(cmd) {
					printlnFn("Please log in first")
				} else {
					printlnFn("Unknown command:", cmd)
				}
				continue
			}
			dispatch(ctx, a, cmd, args)
		}
	}
}

func isSessionCommand(cmd string) bool {
	switch cmd {
	case "new", "edit", "show", "l", "list", "delete", "conflicts", "resolve",
		"sync", "status", "passwd", "logout":
		return true
	}
	return false
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "new":
		_ = a.New(ctx)
	case "edit":
		_ = a.Edit(ctx, args)
	case "show":
		_ = a.Show(ctx, args)
	case "l", "list":
		_ = a.List(ctx)
	case "delete":
		_ = a.Delete(ctx, args)
	case "conflicts":
		_ = a.Conflicts(ctx)
	case "resolve":
		_ = a.Resolve(ctx, args)
	case "sync":
		_ = a.Sync(ctx)
	case "status":
		_ = a.Status(ctx)
	case "passwd":
		_ = a.ChangePassword(ctx)
	case "logout":
		_ = a.Logout(ctx)
	default:
		printlnFn("Unknown command:", cmd)
	}
}
