// Where: cli/cmd/plm/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/poruru/lifecycle-manager/cli/internal/app"
	"github.com/poruru/lifecycle-manager/cli/internal/config"
	"github.com/poruru/lifecycle-manager/cli/internal/interaction"
)

var (
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	isTerminal           = func() bool { return interaction.IsTerminal(os.Stdin) }
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// The huh prompter is only wired when stdin is a terminal; otherwise the
// session command reports that it needs one.
func buildDependencies() app.Dependencies {
	deps := app.Dependencies{
		Out:        stdout,
		LogOut:     stderr,
		LoadConfig: config.Resolve,
	}
	if isTerminal() {
		deps.Prompter = interaction.HuhPrompter{}
	}
	return deps
}
