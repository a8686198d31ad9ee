// Where: cli/internal/app/config_cmd.go
// What: Config management commands.
// Why: Inspect and bootstrap ~/.plm/config.yaml preferences.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/poruru/lifecycle-manager/cli/internal/config"
	"github.com/poruru/lifecycle-manager/cli/internal/interaction"
	"gopkg.in/yaml.v3"
)

type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
	Path ConfigPathCmd `cmd:"" help:"Print the configuration file path"`
	Init ConfigInitCmd `cmd:"" help:"Write a default configuration file"`
}

type (
	ConfigShowCmd struct{}
	ConfigPathCmd struct{}
	ConfigInitCmd struct {
		Force bool `help:"Overwrite an existing file without asking"`
	}
)

func runConfigShow(cli CLI, deps Dependencies, out io.Writer) int {
	rt, err := newCommandRuntime(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	payload, err := yaml.Marshal(&rt.Config)
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintf(out, "# %s\n", rt.ConfigPath)
	fmt.Fprint(out, string(payload))
	return 0
}

func runConfigPath(_ CLI, _ Dependencies, out io.Writer) int {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintln(out, path)
	return 0
}

func runConfigInit(cli CLI, deps Dependencies, out io.Writer) int {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	if _, err := os.Stat(path); err == nil && !cli.Config.Init.Force {
		in := deps.In
		if in == nil {
			in = os.Stdin
		}
		overwrite, err := interaction.PromptYesNoWithIO(in, out, fmt.Sprintf("Overwrite %s?", path))
		if err != nil {
			return exitWithError(out, err)
		}
		if !overwrite {
			return exitWithSuggestion(out, fmt.Sprintf("Config already exists: %s", path),
				[]string{"re-run with --force to overwrite"})
		}
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return exitWithError(out, err)
	}
	if err := config.SaveGlobalConfig(path, config.DefaultGlobalConfig()); err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return 0
}
