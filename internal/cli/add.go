package cli

import (
	"strings"

	"github.com/calvinalkan/task-tracker/internal/task"
)

// AddCmd returns the add command.
func AddCmd() *Command {
	return &Command{
		Usage:   "add <description...>",
		Short:   "Add a task, prints its ID",
		MinArgs: 1,
		Exec:    execAdd,
	}
}

func execAdd(o *IO, store *task.Store, args []string) error {
	description := strings.Join(args, " ")
	if strings.TrimSpace(description) == "" {
		return errUsage
	}

	err := store.Init()
	if err != nil {
		return err
	}

	id, err := store.Add(description)
	if err != nil {
		return err
	}

	o.Printf("Task added successfully (ID: %d)\n", id)

	return nil
}
