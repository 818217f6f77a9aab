// Package testutil provides ops and a reference model for model-vs-CLI
// behavior tests of task-cli.
package testutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/cli"
)

// Result is one operation's outcome, from the model or the real CLI.
//
// Lines holds stdout split into lines, with list lines cut before their
// timestamps so both sides are comparable.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Lines    []string
}

// Op is a behavior test operation executed against model and real CLI.
type Op interface {
	Args() []string
	ApplyModel(m *Model) Result
	String() string
}

// ApplyReal runs op through the CLI.
func ApplyReal(c *cli.CLI, op Op) Result {
	stdout, stderr, code := c.Run(op.Args()...)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	for i, line := range lines {
		if before, _, ok := strings.Cut(line, ", Created At: "); ok {
			lines[i] = before
		}
	}

	return Result{ExitCode: code, Stdout: stdout, Stderr: stderr, Lines: lines}
}

// IDArg is an id argument as typed by the user.
type IDArg struct {
	Raw     string
	ID      int
	Invalid bool
}

// ValidID returns an argument naming id.
func ValidID(id int) IDArg {
	return IDArg{Raw: strconv.Itoa(id), ID: id}
}

// InvalidID returns an argument that does not parse as an id.
func InvalidID(raw string) IDArg {
	return IDArg{Raw: raw, Invalid: true}
}

// OpAdd runs `add <words...>`.
type OpAdd struct {
	Words []string
}

func (op *OpAdd) Args() []string { return append([]string{"add"}, op.Words...) }
func (op *OpAdd) String() string { return formatArgs(op.Args()) }

func (op *OpAdd) ApplyModel(m *Model) Result {
	id := m.Add(strings.Join(op.Words, " "))

	return lines(fmt.Sprintf("Task added successfully (ID: %d)", id))
}

// OpUpdate runs `update <id> <words...>`.
type OpUpdate struct {
	ID    IDArg
	Words []string
}

func (op *OpUpdate) Args() []string {
	return append([]string{"update", op.ID.Raw}, op.Words...)
}

func (op *OpUpdate) String() string { return formatArgs(op.Args()) }

func (op *OpUpdate) ApplyModel(m *Model) Result {
	if op.ID.Invalid {
		return lines("Invalid task ID.")
	}

	if !m.Update(op.ID.ID, strings.Join(op.Words, " ")) {
		return lines("Task not found.")
	}

	return lines("Task updated successfully.")
}

// OpDelete runs `delete <id>`.
type OpDelete struct {
	ID IDArg
}

func (op *OpDelete) Args() []string { return []string{"delete", op.ID.Raw} }
func (op *OpDelete) String() string { return formatArgs(op.Args()) }

func (op *OpDelete) ApplyModel(m *Model) Result {
	if op.ID.Invalid {
		return lines("Invalid task ID.")
	}

	if !m.Delete(op.ID.ID) {
		return lines("Task not found.")
	}

	return lines("Task deleted successfully.")
}

// OpMark runs `mark-<status> <id>`.
type OpMark struct {
	Status string
	ID     IDArg
}

func (op *OpMark) Args() []string { return []string{"mark-" + op.Status, op.ID.Raw} }
func (op *OpMark) String() string { return formatArgs(op.Args()) }

func (op *OpMark) ApplyModel(m *Model) Result {
	if op.ID.Invalid {
		return lines("Invalid task ID.")
	}

	if !m.SetStatus(op.ID.ID, op.Status) {
		return lines("Task not found.")
	}

	return lines("Task marked as " + op.Status + ".")
}

// OpList runs `list [filter]`. An empty Filter passes no argument; an
// unknown one lists everything.
type OpList struct {
	Filter string
}

func (op *OpList) Args() []string {
	if op.Filter == "" {
		return []string{"list"}
	}

	return []string{"list", op.Filter}
}

func (op *OpList) String() string { return formatArgs(op.Args()) }

func (op *OpList) ApplyModel(m *Model) Result {
	status := op.Filter
	if !isStatus(status) {
		status = ""
	}

	tasks := m.List(status)
	if len(tasks) == 0 {
		return lines("No tasks found.")
	}

	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Line())
	}

	return lines(out...)
}

// FormatOps renders an op history for failure messages.
func FormatOps(history []string) string {
	var b strings.Builder

	b.WriteString("ops:\n")

	for i, op := range history {
		fmt.Fprintf(&b, "  %3d: %s\n", i+1, op)
	}

	return b.String()
}

var statuses = []string{"todo", "in-progress", "done"}

func isStatus(s string) bool {
	for _, st := range statuses {
		if s == st {
			return true
		}
	}

	return false
}

func lines(l ...string) Result {
	return Result{Lines: l}
}

func formatArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t") {
			a = strconv.Quote(a)
		}

		quoted[i] = a
	}

	return strings.Join(quoted, " ")
}
