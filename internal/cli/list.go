package cli

import (
	"strconv"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/task"
)

const msgNoTasks = "No tasks found."

// ListCmd returns the list command.
func ListCmd() *Command {
	return &Command{
		Usage:   "list [done|todo|in-progress]",
		Short:   "List tasks, optionally by status",
		MinArgs: 0,
		Exec:    execList,
	}
}

func execList(o *IO, store *task.Store, args []string) error {
	var opts task.ListOptions

	if len(args) > 0 {
		status, err := task.ParseStatus(args[0])
		if err != nil {
			o.Warn("unknown status filter "+strconv.Quote(args[0]), "listing all tasks")
		} else {
			opts.Status = status
		}
	}

	err := store.Init()
	if err != nil {
		return err
	}

	tasks, err := store.List(opts)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		o.Println(msgNoTasks)

		return nil
	}

	for i := range tasks {
		o.Println(formatTaskLine(&tasks[i]))
	}

	return nil
}

func formatTaskLine(t *task.Task) string {
	var builder strings.Builder

	builder.WriteString("ID: ")
	builder.WriteString(strconv.Itoa(t.ID))
	builder.WriteString(", Description: ")
	builder.WriteString(t.Description)
	builder.WriteString(", Status: ")
	builder.WriteString(t.Status.String())
	builder.WriteString(", Created At: ")
	builder.WriteString(task.FormatTimestamp(t.CreatedAt))
	builder.WriteString(", Updated At: ")
	builder.WriteString(task.FormatTimestamp(t.UpdatedAt))

	return builder.String()
}
