// Package cli implements the command-line interface for task-cli.
package cli

import (
	"fmt"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/task"
)

// Command defines a CLI verb with unified help generation.
type Command struct {
	// Usage is the freeform usage string shown after "task-cli" in help.
	// Includes the command name and arguments.
	// Examples: "add <description...>", "list [done|todo|in-progress]"
	Usage string

	// Short is a one-line description for the global help listing.
	Short string

	// MinArgs is the number of arguments required after the verb.
	// Fewer arguments is a usage error, not a command failure.
	MinArgs int

	// Exec runs the command. Recoverable task errors (invalid id, not found)
	// are returned as-is and reported by the dispatcher.
	Exec func(o *IO, store *task.Store, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine returns the short help line for the main usage display.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-30s %s", c.Usage, c.Short)
}

// commands returns the verb table in display order.
func commands() []*Command {
	return []*Command{
		AddCmd(),
		UpdateCmd(),
		DeleteCmd(),
		MarkCmd("mark-in-progress", task.StatusInProgress),
		MarkCmd("mark-done", task.StatusDone),
		ListCmd(),
	}
}

// CommandNames returns the names of all verbs in display order.
func CommandNames() []string {
	cmds := commands()
	names := make([]string, 0, len(cmds))

	for _, cmd := range cmds {
		names = append(names, cmd.Name())
	}

	return names
}

func findCommand(name string) *Command {
	for _, cmd := range commands() {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}
