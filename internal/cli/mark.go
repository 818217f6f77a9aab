package cli

import (
	"github.com/calvinalkan/task-tracker/internal/task"
)

// MarkCmd returns a command that sets a task's status.
func MarkCmd(name string, status task.Status) *Command {
	return &Command{
		Usage:   name + " <id>",
		Short:   "Set status to " + status.String(),
		MinArgs: 1,
		Exec: func(o *IO, store *task.Store, args []string) error {
			return execMark(o, store, name, status, args)
		},
	}
}

func execMark(o *IO, store *task.Store, name string, status task.Status, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}

	warnExtraArgs(o, name, args[1:])

	err = store.Init()
	if err != nil {
		return err
	}

	err = store.SetStatus(id, status)
	if err != nil {
		return err
	}

	o.Printf("Task marked as %s.\n", status)

	return nil
}
