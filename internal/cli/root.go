package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	if a.gate.IsAuthenticated(ctx) {
		return "(owner) "
	}
	return ""
}

// Root runs the interactive loop. The public catalog is always reachable;
// authoring commands appear only once the owner has logged in, mirroring the
// hidden admin panel of the original page.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "certfolio (type 'help' for commands)")
	a.Catalog(ctx)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "certfolio %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
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
			if a.gate.IsAuthenticated(ctx) {
				fmt.Fprintln(a.out, "Available commands: catalog, list, add, edit <id>, delete <id>, clear, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: catalog, login, exit")
			}

		case "catalog":
			a.Catalog(ctx)

		case "login":
			a.Login(ctx)

		case "logout":
			a.Logout(ctx)

		case "list":
			if !a.requireOwner(ctx) {
				continue
			}
			a.List(ctx)

		case "add":
			if !a.requireOwner(ctx) {
				continue
			}
			a.Add(ctx)

		case "edit":
			if !a.requireOwner(ctx) {
				continue
			}
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			a.Edit(ctx, args[0])

		case "delete":
			if !a.requireOwner(ctx) {
				continue
			}
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			a.Delete(ctx, args[0])

		case "clear":
			if !a.requireOwner(ctx) {
				continue
			}
			a.controller.ClearForm()
			a.showNotice()

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// requireOwner hides the authoring surface from anonymous sessions. It is a
// visibility gate only; the credential check lives in the session package.
func (a *App) requireOwner(ctx context.Context) bool {
	if a.gate.IsAuthenticated(ctx) {
		return true
	}
	fmt.Fprintln(a.out, "Owner commands are hidden. Use 'login' first.")
	return false
}

func (a *App) showNotice() {
	if text := a.controller.Notice().Text(); text != "" {
		fmt.Fprintln(a.out, text)
	}
}
