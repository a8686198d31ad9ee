// Where: cli/internal/app/runtime.go
// What: Per-invocation config, console, and logger wiring.
// Why: Resolve preferences once so every command formats and logs the same way.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poruru/lifecycle-manager/cli/internal/config"
	"github.com/poruru/lifecycle-manager/cli/internal/logging"
	"github.com/poruru/lifecycle-manager/cli/internal/registry"
	"github.com/poruru/lifecycle-manager/cli/internal/ui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// commandRuntime bundles what command handlers need beyond their flags.
type commandRuntime struct {
	Config     config.GlobalConfig
	ConfigPath string
	Console    *ui.Console
	Logger     *zap.Logger
}

func newCommandRuntime(cli CLI, deps Dependencies, out io.Writer) (commandRuntime, error) {
	load := deps.LoadConfig
	if load == nil {
		load = config.Resolve
	}
	cfg, path, err := load()
	if err != nil {
		return commandRuntime{}, err
	}

	level := zapcore.DebugLevel
	if !cli.Verbose {
		level, err = logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return commandRuntime{}, err
		}
	}
	logOut := deps.LogOut
	if logOut == nil {
		logOut = os.Stderr
	}
	logger := logging.New(level, logOut)
	logger.Debug("config resolved",
		zap.String("path", path),
		zap.String("scm_platform", cfg.SCMPlatform),
		zap.String("default_stack", cfg.DefaultStack))

	console := ui.NewWithEmoji(out, cfg.EmojiEnabled() && !cli.NoEmoji)
	cfg.DefaultStack = normalizeDefaultStack(cfg.DefaultStack, console)

	return commandRuntime{
		Config:     cfg,
		ConfigPath: path,
		Console:    console,
		Logger:     logger,
	}, nil
}

// normalizeDefaultStack maps default_stack onto a form option, falling back to US.
func normalizeDefaultStack(value string, console *ui.Console) string {
	if strings.TrimSpace(value) == "" {
		return registry.StackUS.String()
	}
	stack, err := registry.ParseStack(value)
	if err != nil {
		console.Warn(fmt.Sprintf("Ignoring default_stack %q; using %s", value, registry.StackUS))
		return registry.StackUS.String()
	}
	return stack.String()
}

// tableOptions merges the --ids flag with the show_ids preference.
func (r commandRuntime) tableOptions(showIDs bool) ui.TableOptions {
	return ui.TableOptions{ShowIDs: showIDs || r.Config.ShowIDs}
}
