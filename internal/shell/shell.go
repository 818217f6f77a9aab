// Package shell runs task-cli commands from an interactive prompt.
//
// Each line is split with shell quoting rules and dispatched exactly like a
// separate task-cli invocation, so every command still performs its own
// load, mutate and save cycle.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/cli"
	"github.com/calvinalkan/task-tracker/internal/task"

	"github.com/mattn/go-shellwords"
	"github.com/peterh/liner"
)

// Prompt is shown before every input line.
const Prompt = "task> "

// Prompter reads lines from the user. [liner.State] satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Shell dispatches input lines to the task-cli command table.
type Shell struct {
	out        io.Writer
	errOut     io.Writer
	env        map[string]string
	globalArgs []string
}

// New returns a shell writing to out and errOut. globalArgs are prepended
// to every command, e.g. []string{"--file", "work.json"}.
func New(out, errOut io.Writer, env map[string]string, globalArgs []string) *Shell {
	return &Shell{
		out:        out,
		errOut:     errOut,
		env:        env,
		globalArgs: globalArgs,
	}
}

// Loop reads and executes lines until exit, EOF or Ctrl-C.
func (s *Shell) Loop(p Prompter) error {
	s.println("task-shell - type 'help' for commands, 'exit' to quit")

	for {
		line, err := p.Prompt(Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				s.println("\nBye!")

				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		p.AppendHistory(line)

		if s.Exec(line) {
			s.println("Bye!")

			return nil
		}
	}
}

// Exec runs a single input line. Reports whether the shell should exit.
func (s *Shell) Exec(line string) bool {
	words, err := shellwords.Parse(line)
	if err != nil {
		_, _ = fmt.Fprintln(s.errOut, "error:", err)

		return false
	}

	if len(words) == 0 {
		return false
	}

	switch words[0] {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		s.run([]string{"--help"})
	default:
		s.run(words)
	}

	return false
}

// Complete returns completions for the current input line: verbs and
// built-ins for the first word, status names after "list".
func (s *Shell) Complete(line string) []string {
	verb, rest, hasArgs := strings.Cut(line, " ")
	if !hasArgs {
		var out []string

		for _, name := range append(cli.CommandNames(), "help", "exit") {
			if strings.HasPrefix(name, verb) {
				out = append(out, name)
			}
		}

		return out
	}

	if verb != "list" || strings.Contains(rest, " ") {
		return nil
	}

	var out []string

	for _, st := range task.Statuses() {
		if strings.HasPrefix(st.String(), rest) {
			out = append(out, verb+" "+st.String())
		}
	}

	return out
}

func (s *Shell) run(words []string) int {
	args := make([]string, 0, 1+len(s.globalArgs)+len(words))
	args = append(args, "task-cli")
	args = append(args, s.globalArgs...)
	args = append(args, words...)

	return cli.Run(nil, s.out, s.errOut, args, s.env)
}

func (s *Shell) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}
