package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/task"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

// User-facing result lines for recoverable errors.
const (
	msgInvalidID = "Invalid task ID."
	msgNotFound  = "Task not found."
)

// errUsage is returned by commands whose arguments have the right count but
// the wrong shape (e.g. only blank words as a description).
var errUsage = errors.New("invalid command or arguments")

// Run is the main entry point. Returns exit code.
//
// Usage problems (no verb, unknown verb, too few arguments) print the usage
// and exit 0. Only flag, config and storage failures exit 1.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	var globals globalFlags

	flags := newGlobalFlagSet(&globals)

	if len(args) > 0 {
		args = args[1:]
	}

	err := flags.Parse(args)
	if err == nil && flags.Changed("file") && globals.tasksFile == "" {
		err = task.ErrTasksFileEmpty
	}

	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, flags)

		return 1
	}

	if globals.help {
		printUsage(out, flags)

		return 0
	}

	rest := flags.Args()
	if len(rest) == 0 {
		fprintln(out, "No command provided. "+availableCommands())
		fprintln(out)
		printUsage(out, flags)

		return 0
	}

	cmd := findCommand(rest[0])
	if cmd == nil || len(rest)-1 < cmd.MinArgs {
		printInvalidUsage(out, flags)

		return 0
	}

	cfg, err := task.LoadConfig(task.LoadConfigInput{
		WorkDirOverride:   globals.workDir,
		ConfigPath:        globals.configPath,
		TasksFileOverride: globals.tasksFile,
		LogLevelOverride:  globals.logLevel(),
		Env:               env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	log, err := newLogger(cfg.LogLevel, errOut)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	defer func() { _ = log.Sync() }()

	log.Debug("resolved config",
		zap.String("cwd", cfg.EffectiveCwd),
		zap.String("tasks_file", cfg.TasksFileAbs),
		zap.String("global_config", cfg.Sources.Global),
		zap.String("project_config", cfg.Sources.Project),
	)
	log.Debug("dispatch", zap.String("command", cmd.Name()), zap.Int("args", len(rest)-1))

	store := task.NewStore(cfg.TasksFileAbs, task.WithLogger(log))
	o := NewIO(out, errOut)

	cmdErr := cmd.Exec(o, store, rest[1:])

	switch {
	case cmdErr == nil:
	case errors.Is(cmdErr, task.ErrInvalidID):
		o.Println(msgInvalidID)
	case errors.Is(cmdErr, task.ErrTaskNotFound):
		o.Println(msgNotFound)
	case errors.Is(cmdErr, errUsage), errors.Is(cmdErr, task.ErrDescriptionEmpty):
		o.Finish()
		printInvalidUsage(out, flags)
	default:
		o.Finish()
		log.Error("command failed", zap.String("command", cmd.Name()), zap.Error(cmdErr))
		fprintln(errOut, "error:", cmdErr)

		return 1
	}

	o.Finish()

	return 0
}

type globalFlags struct {
	workDir    string
	configPath string
	tasksFile  string
	verbose    bool
	help       bool
}

func (g *globalFlags) logLevel() string {
	if g.verbose {
		return "debug"
	}

	return ""
}

// newGlobalFlagSet defines the flags accepted before the verb. Parsing stops
// at the first non-flag argument so descriptions like "-5 degrees" reach
// the command untouched.
func newGlobalFlagSet(g *globalFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("task-cli", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&g.help, "help", "h", false, "Show help")
	fs.StringVarP(&g.workDir, "cwd", "C", "", "Run as if started in `dir`")
	fs.StringVarP(&g.configPath, "config", "c", "", "Use specified config `file`")
	fs.StringVarP(&g.tasksFile, "file", "f", "", "Task file `path` (default \""+task.DefaultFileName+"\")")
	fs.BoolVarP(&g.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	return fs
}

func availableCommands() string {
	return "Available commands: " + strings.Join(CommandNames(), ", ")
}

func printInvalidUsage(w io.Writer, flags *flag.FlagSet) {
	fprintln(w, "Invalid command or arguments. "+availableCommands())
	fprintln(w)
	printUsage(w, flags)
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, flags *flag.FlagSet) {
	fprintln(w, `task-cli - track tasks in a JSON file

Usage: task-cli [flags] <command> [args]

Commands:`)

	for _, cmd := range commands() {
		fprintln(w, cmd.HelpLine())
	}

	fprintln(w)
	fprintln(w, "Global flags:")
	_, _ = fmt.Fprint(w, flags.FlagUsages())
}
