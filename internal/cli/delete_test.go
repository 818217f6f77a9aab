package cli_test

import (
	"os"
	"testing"

	"github.com/calvinalkan/task-tracker/internal/cli"
)

func Test_Delete_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "first")
	c.MustRun("add", "second")
	c.MustRun("add", "third")

	if got, want := c.MustRun("delete", "2"), "Task deleted successfully."; got != want {
		t.Fatalf("stdout=%q, want=%q", got, want)
	}

	stdout := c.MustRun("list")
	cli.AssertContains(t, stdout, "ID: 1, Description: first,")
	cli.AssertContains(t, stdout, "ID: 3, Description: third,")
	cli.AssertNotContains(t, stdout, "second")

	if got, want := len(readStored(t, c)), 2; got != want {
		t.Fatalf("stored tasks=%d, want=%d", got, want)
	}

	if got, want := c.MustRun("delete", "2"), "Task not found."; got != want {
		t.Fatalf("second delete stdout=%q, want=%q", got, want)
	}
}

// An invalid id is rejected before the backing file is even created.
func Test_Delete_Invalid_ID_Does_Not_Touch_Storage_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	if got, want := c.MustRun("delete", "abc"), "Invalid task ID."; got != want {
		t.Fatalf("stdout=%q, want=%q", got, want)
	}

	if _, err := os.Stat(c.TasksFile()); !os.IsNotExist(err) {
		t.Fatalf("tasks file should not exist (stat err=%v)", err)
	}

	// Not even a malformed file is consulted.
	c.WriteTasks("not json")

	if got, want := c.MustRun("delete", "abc"), "Invalid task ID."; got != want {
		t.Fatalf("stdout=%q, want=%q", got, want)
	}
}

func Test_Delete_Extra_Args_Warn_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "a")

	stdout, stderr, exitCode := c.Run("delete", "1", "2")

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, "Task deleted successfully.\n"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, `warning: delete takes a single task ID: ignoring "2"`)
}

// Integers too large for any stored id are well-formed and never match.
func Test_Out_Of_Range_ID_Is_Not_Found_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"delete", "99999999999999999999"},
		{"mark-done", "99999999999999999999"},
		{"mark-in-progress", "-99999999999999999999"},
		{"update", "99999999999999999999", "y"},
	} {
		args := args

		t.Run(args[0], func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			c.MustRun("add", "x")
			before := c.ReadTasks()

			if got, want := c.MustRun(args...), "Task not found."; got != want {
				t.Fatalf("stdout=%q, want=%q", got, want)
			}

			if got := c.ReadTasks(); got != before {
				t.Fatalf("tasks file changed:\n%s", got)
			}
		})
	}
}

func Test_Delete_Accepts_Underscore_Grouped_ID_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "first")

	if got, want := c.MustRun("delete", "0_1"), "Task deleted successfully."; got != want {
		t.Fatalf("stdout=%q, want=%q", got, want)
	}

	if got, want := c.MustRun("delete", "1__0"), "Invalid task ID."; got != want {
		t.Fatalf("stdout=%q, want=%q", got, want)
	}
}
