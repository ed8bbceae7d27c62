package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errUsage marks a command invoked with missing or malformed arguments.
var errUsage = errors.New("usage")

func usage(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a stub.
type execIface interface {
	Cabinets(ctx context.Context, args []string) error
	AddCabinet(ctx context.Context, args []string) error
	Racks(ctx context.Context, args []string) error
	Bottles(ctx context.Context, args []string) error
	AddBottle(ctx context.Context, args []string) error
	AddCase(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Consume(ctx context.Context, args []string) error
	Open(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Label(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Sync(ctx context.Context, args []string) error
	Clear(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  cabinets                       list your cabinets, rooms and racks
  addcabinet                     add a cabinet (interactive)
  racks <roomID>                 list the racks of a room
  bottles <cabinetID>            list bottles stored in a cabinet
  addbottle <cabinetID>          add a bottle (interactive)
  addcase <cabinetID> <slot>...  add one wine to slots row,col[,depth]
  show <bottleID>                show one bottle
  consume <bottleID> [rating]    mark a bottle consumed, rating 1-10
  open <bottleID>                mark a bottle opened
  history                        list opened and consumed bottles
  label <bottleID> <image>       upload a label photo (online only)
  status                         show connectivity and pending changes
  sync                           push pending changes now
  clear                          delete all local data
  help                           show this help
  exit | quit                    leave the program`

// runREPL reads commands from in until EOF, "exit" or "quit", or until ctx
// is cancelled. Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	commands := map[string]func(context.Context, []string) error{
		"cabinets":   a.Cabinets,
		"addcabinet": a.AddCabinet,
		"racks":      a.Racks,
		"bottles":    a.Bottles,
		"addbottle":  a.AddBottle,
		"addcase":    a.AddCase,
		"show":       a.Show,
		"consume":    a.Consume,
		"open":       a.Open,
		"history":    a.History,
		"label":      a.Label,
		"status":     a.Status,
		"sync":       a.Sync,
		"clear":      a.Clear,
	}

	for ctx.Err() == nil {
		fmt.Fprintf(out, "cellar %s> ", statusFn())
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		}

		run, ok := commands[cmd]
		if !ok {
			fmt.Fprintln(out, "Unknown command:", cmd)
			continue
		}
		if err := run(ctx, args); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
}
