package cli

import (
	"strings"

	"github.com/calvinalkan/task-tracker/internal/task"
)

// UpdateCmd returns the update command.
func UpdateCmd() *Command {
	return &Command{
		Usage:   "update <id> <description...>",
		Short:   "Replace a task's description",
		MinArgs: 2,
		Exec:    execUpdate,
	}
}

func execUpdate(o *IO, store *task.Store, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}

	description := strings.Join(args[1:], " ")
	if strings.TrimSpace(description) == "" {
		return errUsage
	}

	err = store.Init()
	if err != nil {
		return err
	}

	err = store.Update(id, description)
	if err != nil {
		return err
	}

	o.Println("Task updated successfully.")

	return nil
}
