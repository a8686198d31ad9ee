// Where: cli/internal/app/scenario.go
// What: Scenario run and validate commands.
// Why: Apply scripted form submissions to a fresh session without a terminal.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/lifecycle-manager/cli/internal/registry"
	"github.com/poruru/lifecycle-manager/cli/internal/scenario"
	"github.com/poruru/lifecycle-manager/cli/internal/ui"
)

type (
	RunCmd struct {
		File   string `arg:"" help:"Scenario file (YAML)"`
		Strict bool   `help:"Stop at the first failing step"`
		IDs    bool   `name:"ids" help:"Show derived project ID columns"`
	}
	ValidateCmd struct {
		File string `arg:"" help:"Scenario file (YAML)"`
	}
)

func runScenario(cli CLI, deps Dependencies, out io.Writer) int {
	rt, err := newCommandRuntime(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	defer func() { _ = rt.Logger.Sync() }()

	sc, err := scenario.Load(cli.Run.File)
	if err != nil {
		return exitWithError(out, err)
	}

	session := registry.NewSession()
	result := scenario.Apply(session, sc, scenario.Options{Strict: cli.Run.Strict, Logger: rt.Logger})
	reportScenario(rt.Console, result)
	renderTables(rt.Console, session, rt.tableOptions(cli.Run.IDs))

	if !result.OK() {
		return 1
	}
	return 0
}

// runValidate checks a scenario file only; it does not read the global config.
func runValidate(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.NewWithEmoji(out, !cli.NoEmoji)
	sc, err := scenario.Load(cli.Validate.File)
	if err != nil {
		return exitWithError(out, err)
	}
	console.Success(fmt.Sprintf("Scenario is valid (%d steps)", len(sc.Steps)))
	for i, step := range sc.Steps {
		console.Item(fmt.Sprintf("Step %d", i+1), fmt.Sprintf("%s %s", step.Action, step.Name))
	}
	return 0
}

// reportScenario prints one warning per failed step.
func reportScenario(console *ui.Console, result scenario.Result) {
	for _, failure := range result.Failures {
		console.Warn(failure.Error())
	}
	if len(result.Failures) == 0 {
		console.Success(fmt.Sprintf("Applied %d steps", result.Applied))
		return
	}
	console.Info(fmt.Sprintf("Applied %d steps, %d failed", result.Applied, len(result.Failures)))
}
