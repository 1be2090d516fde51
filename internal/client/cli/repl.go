package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// errUsage makes the REPL print the command's usage line.
var errUsage = errors.New("usage")

type scope int

const (
	scopeAny scope = iota
	scopeGuest
	scopeSession
)

type command struct {
	name    string
	aliases []string
	usage   string
	scope   scope
	run     func(ctx context.Context, args []string) error
}

func (c command) matches(name string) bool {
	if c.name == name {
		return true
	}
	for _, a := range c.aliases {
		if a == name {
			return true
		}
	}
	return false
}

func (c command) visible(loggedIn bool) bool {
	switch c.scope {
	case scopeGuest:
		return !loggedIn
	case scopeSession:
		return loggedIn
	}
	return true
}

// runREPL reads one command per line from in and dispatches it to cmds.
//
// The first token selects the command, the rest are its arguments. After a
// command returns, after is called so the caller can surface and dismiss the
// messages the command left in the store. Rejections are not printed here:
// their message is already in the store. The loop exits on EOF or when the
// user types "exit" or "quit".
func runREPL(ctx context.Context, cmds []command, loggedIn func() bool, statusFn func() string, in *bufio.Reader, after func()) {
	for {
		printlnFn(fmt.Sprintf("ma> %s > ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printHelp(cmds, loggedIn())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := lookup(cmds, name)
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if !c.visible(loggedIn()) {
			if c.scope == scopeSession {
				printlnFn("Please log in first")
			} else {
				printlnFn("Log out first")
			}
			continue
		}

		if err := c.run(ctx, args); err != nil {
			var rej *lifecycle.Rejection
			switch {
			case errors.Is(err, errUsage):
				printlnFn("Usage:", c.usage)
			case errors.As(err, &rej):
			default:
				printlnFn(errorStyle.Render(err.Error()))
			}
		}
		after()
	}
}

func lookup(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.matches(name) {
			return c, true
		}
	}
	return command{}, false
}

func printHelp(cmds []command, loggedIn bool) {
	printlnFn(titleStyle.Render("Available commands:"))
	for _, c := range cmds {
		if c.visible(loggedIn) {
			printlnFn("  " + c.usage)
		}
	}
	printlnFn("  help")
	printlnFn("  exit")
}
