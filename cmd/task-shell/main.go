// task-shell is an interactive prompt for task-cli.
//
// Usage:
//
//	task-shell [-C dir] [-c config] [-f file] [-v]
//
// Every line is run as one task-cli command against the same tasks file:
//
//	task> add "buy milk"
//	task> mark-done 1
//	task> list done
//
// Built-ins: help / ?, exit / quit / q.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/shell"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := flag.NewFlagSet("task-shell", flag.ContinueOnError)

	var (
		cwd     = flags.StringP("cwd", "C", "", "Run as if started in `dir`")
		config  = flags.StringP("config", "c", "", "Use specified config `file`")
		file    = flags.StringP("file", "f", "", "Use specified tasks `file`")
		verbose = flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")
	)

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		fmt.Fprintln(os.Stderr, "error:", err)

		return 1
	}

	// Forward only the flags that were given so config files keep precedence.
	var globalArgs []string

	for _, f := range []struct{ name, value string }{
		{"cwd", *cwd},
		{"config", *config},
		{"file", *file},
	} {
		if flags.Changed(f.name) {
			globalArgs = append(globalArgs, "--"+f.name, f.value)
		}
	}

	if *verbose {
		globalArgs = append(globalArgs, "--verbose")
	}

	sh := shell.New(os.Stdout, os.Stderr, environ(), globalArgs)

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(sh.Complete)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	err := sh.Loop(line)

	saveHistory(line)

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		return 1
	}

	return 0
}

func environ() map[string]string {
	env := make(map[string]string)

	for _, e := range os.Environ() {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	return env
}

// historyFile returns the path to the history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".task_shell_history")
}

// saveHistory persists command history to disk.
func saveHistory(line *liner.State) {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}
}
