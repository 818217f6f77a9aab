package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/calvinalkan/task-tracker/internal/cli"
)

func Test_Bare_Command_Prints_Usage_When_Invoked(t *testing.T) {
	t.Parallel()

	// Call Run directly without test helper (which adds --cwd)
	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"task-cli"}, nil)

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stderr.String(), ""; got != want {
		t.Errorf("stderr=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stdout.String(), "No command provided. Available commands: add, update, delete, mark-in-progress, mark-done, list")
	cli.AssertContains(t, stdout.String(), "add <description...>")
	cli.AssertContains(t, stdout.String(), "list [done|todo|in-progress]")
}

func Test_Usage_Errors_Exit_Normally_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		args []string
	}{
		{name: "unknown verb", args: []string{"frobnicate"}},
		{name: "add without text", args: []string{"add"}},
		{name: "update without text", args: []string{"update", "1"}},
		{name: "update without args", args: []string{"update"}},
		{name: "delete without id", args: []string{"delete"}},
		{name: "mark-done without id", args: []string{"mark-done"}},
		{name: "mark-in-progress without id", args: []string{"mark-in-progress"}},
		{name: "add with empty text", args: []string{"add", ""}},
		{name: "verb is case sensitive", args: []string{"LIST"}},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stdout, stderr, exitCode := c.Run(tt.args...)

			if got, want := exitCode, 0; got != want {
				t.Errorf("exitCode=%d, want=%d", got, want)
			}

			if got, want := stderr, ""; got != want {
				t.Errorf("stderr=%q, want=%q", got, want)
			}

			cli.AssertContains(t, stdout, "Invalid command or arguments. Available commands:")
			cli.AssertContains(t, stdout, "mark-in-progress <id>")
		})
	}
}

// Usage errors are detected before the backing file is created.
func Test_Usage_Errors_Do_Not_Create_Tasks_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Run("add")
	c.Run("bogus")
	c.Run()

	if _, err := os.Stat(c.TasksFile()); !os.IsNotExist(err) {
		t.Fatalf("tasks file exists after usage errors (stat err=%v)", err)
	}
}

func Test_Main_Help_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		args []string
	}{
		{name: "long flag", args: []string{"--help"}},
		{name: "short flag", args: []string{"-h"}},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stdout, stderr, exitCode := c.Run(tt.args...)

			if got, want := exitCode, 0; got != want {
				t.Errorf("exitCode=%d, want=%d", got, want)
			}

			if got, want := stderr, ""; got != want {
				t.Errorf("stderr=%q, want=%q", got, want)
			}

			cli.AssertContains(t, stdout, "task-cli - track tasks in a JSON file")
			cli.AssertContains(t, stdout, "Global flags:")
			cli.AssertContains(t, stdout, "--cwd")
			cli.AssertContains(t, stdout, "--file")
			cli.AssertNotContains(t, stdout, "No command provided")
		})
	}
}

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("--invalid-flag", "list")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")
	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--config")
}

func Test_Empty_File_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--file=", "list")

	cli.AssertContains(t, stderr, "tasks-file cannot be empty")
}

// Flags are only recognised before the verb; afterwards they are text.
func Test_Flag_Like_Words_After_Verb_Are_Text_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "-v", "--help", "-5", "degrees")

	stdout := c.MustRun("list")
	cli.AssertContains(t, stdout, "Description: -v --help -5 degrees,")
}

func Test_File_Flag_Selects_Backing_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("-f", "work/todo.json", "add", "in other file")

	if _, err := os.Stat(filepath.Join(c.Dir, "work", "todo.json")); err != nil {
		t.Fatalf("expected work/todo.json: %v", err)
	}

	if _, err := os.Stat(c.TasksFile()); !os.IsNotExist(err) {
		t.Fatalf("default tasks.json should not exist (stat err=%v)", err)
	}

	cli.AssertContains(t, c.MustRun("--file=work/todo.json", "list"), "in other file")
	cli.AssertContains(t, c.MustRun("list"), "No tasks found.")
}

func Test_Project_Config_Sets_Tasks_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".task-cli.json", `{
		// JSONC is fine
		"tasks_file": "from-config.json",
	}`)

	c.MustRun("add", "configured")

	if _, err := os.Stat(filepath.Join(c.Dir, "from-config.json")); err != nil {
		t.Fatalf("expected from-config.json: %v", err)
	}

	// --file wins over config
	cli.AssertContains(t, c.MustRun("-f", "tasks.json", "list"), "No tasks found.")
}

func Test_Explicit_Config_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("conf/custom.json", `{"tasks_file": "custom-tasks.json"}`)

	c.MustRun("-c", "conf/custom.json", "add", "x")

	if _, err := os.Stat(filepath.Join(c.Dir, "custom-tasks.json")); err != nil {
		t.Fatalf("expected custom-tasks.json: %v", err)
	}

	stderr := c.MustFail("--config=missing.json", "list")
	cli.AssertContains(t, stderr, "config file not found")
}

func Test_Global_Config_From_Env_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	xdg := t.TempDir()
	c.Env["XDG_CONFIG_HOME"] = xdg

	path := filepath.Join(xdg, "task-cli", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(`{"tasks_file": "global-tasks.json"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	c.MustRun("add", "x")

	if _, err := os.Stat(filepath.Join(c.Dir, "global-tasks.json")); err != nil {
		t.Fatalf("expected global-tasks.json: %v", err)
	}
}

func Test_Invalid_Config_Is_Fatal_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".task-cli.json", `{invalid json}`)

	stderr := c.MustFail("list")
	cli.AssertContains(t, stderr, "invalid config file")
}

func Test_Verbose_Logs_To_Stderr_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("-v", "add", "logged")

	if got, want := exitCode, 0; got != want {
		t.Fatalf("exitCode=%d, want=%d\nstderr: %s", got, want, stderr)
	}

	if got, want := stdout, "Task added successfully (ID: 1)\n"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "debug")
	cli.AssertContains(t, stderr, "resolved config")
	cli.AssertContains(t, stderr, "initialized task file")
	cli.AssertContains(t, stderr, "added task")
}

func Test_Log_Level_From_Config_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".task-cli.json", `{"log_level": "info"}`)

	_, stderr, _ := c.Run("add", "x")
	cli.AssertContains(t, stderr, "added task")
	cli.AssertNotContains(t, stderr, "resolved config")

	c.WriteFile(".task-cli.json", `{"log_level": "loud"}`)
	stderr = c.MustFail("list")
	cli.AssertContains(t, stderr, "invalid log level")
}

func Test_Quiet_By_Default_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	_, stderr, _ := c.Run("add", "x")

	if stderr != "" {
		t.Fatalf("stderr=%q, want empty", stderr)
	}
}
