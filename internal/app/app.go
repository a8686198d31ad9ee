// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/lifecycle-manager/cli/internal/config"
	"github.com/poruru/lifecycle-manager/cli/internal/interaction"
	"github.com/poruru/lifecycle-manager/cli/internal/meta"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// This structure enables dependency injection for testing and allows swapping
// implementations of various subsystems.
type Dependencies struct {
	Out io.Writer
	// In answers yes/no confirmations; defaults to stdin.
	In io.Reader
	// LogOut receives diagnostic logs; defaults to stderr.
	LogOut io.Writer
	// Prompter drives the interactive session. Nil means huh, and only on a terminal.
	Prompter interaction.Prompter
	// LoadConfig resolves the global config; defaults to config.Resolve.
	LoadConfig func() (config.GlobalConfig, string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile    string        `name:"env-file" help:"Path to .env file"`
	Verbose    bool          `short:"v" help:"Enable debug logging"`
	NoEmoji    bool          `name:"no-emoji" help:"Disable emoji in output"`
	Session    SessionCmd    `cmd:"" help:"Start an interactive session"`
	Run        RunCmd        `cmd:"" help:"Apply a scenario file to a fresh session"`
	Validate   ValidateCmd   `cmd:"" help:"Validate a scenario file"`
	ExtractID  ExtractIDCmd  `cmd:"" name:"extract-id" help:"Print the project ID derived from a link"`
	Color      ColorCmd      `cmd:"" help:"Print the display color of environment names"`
	Pipeline   PipelineCmd   `cmd:"" help:"Show pipeline actions for an SCM platform"`
	Config     ConfigCmd     `cmd:"" name:"config" help:"Manage configuration"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	// Handle no arguments: show usage
	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description(meta.DisplayName),
		kong.Writers(out, out),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, out)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else {
		// Default to .env in current directory
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"session":         runSession,
		"pipeline":        runPipeline,
		"config show":     runConfigShow,
		"config path":     runConfigPath,
		"config init":     runConfigInit,
		"completion bash": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "run", handler: runScenario},
		{prefix: "validate", handler: runValidate},
		{prefix: "extract-id", handler: runExtractID},
		{prefix: "color", handler: runColor},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// commandName extracts the first non-flag argument from the command line,
// which represents the command name. Recognizes and skips known flag pairs.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "--env-file", "--script", "--platform":
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}

// runNoArgs handles the case when plm is invoked without arguments.
func runNoArgs(out io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s session [--script <file>]   interactive environment/project forms\n", meta.AppName)
	fmt.Fprintf(out, "  %s run <file>                  apply a scenario and print both tables\n", meta.AppName)
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "Try: %s --help\n", meta.AppName)
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(args []string, err error, out io.Writer) int {
	errStr := err.Error()

	if strings.Contains(errStr, "expected") {
		switch commandName(args) {
		case "run", "validate":
			return exitWithSuggestion(out, "Scenario file required.",
				[]string{meta.AppName + " run <file>", meta.AppName + " validate <file>"})
		case "extract-id":
			return exitWithSuggestion(out, "Project link required.",
				[]string{meta.AppName + " extract-id https://connection.keboola.com/admin/projects/<id>"})
		case "color":
			return exitWithSuggestion(out, "Environment name required.",
				[]string{meta.AppName + " color <name>..."})
		}
	}

	return exitWithError(out, err)
}
