package cli

import (
	"strconv"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/task"
)

// DeleteCmd returns the delete command.
func DeleteCmd() *Command {
	return &Command{
		Usage:   "delete <id>",
		Short:   "Delete a task",
		MinArgs: 1,
		Exec:    execDelete,
	}
}

func execDelete(o *IO, store *task.Store, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}

	warnExtraArgs(o, "delete", args[1:])

	err = store.Init()
	if err != nil {
		return err
	}

	err = store.Delete(id)
	if err != nil {
		return err
	}

	o.Println("Task deleted successfully.")

	return nil
}

// warnExtraArgs flags arguments a single-id command does not use.
func warnExtraArgs(o *IO, name string, extra []string) {
	if len(extra) == 0 {
		return
	}

	o.Warn(name+" takes a single task ID", "ignoring "+quoteAll(extra))
}

func quoteAll(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = strconv.Quote(a)
	}

	return strings.Join(quoted, " ")
}
