// Where: cli/internal/app/pipeline.go
// What: Pipeline actions command.
// Why: Preview the placeholder pipeline setup for a platform and scenario.
package app

import (
	"io"
	"strings"

	"github.com/poruru/lifecycle-manager/cli/internal/meta"
	"github.com/poruru/lifecycle-manager/cli/internal/pipeline"
	"github.com/poruru/lifecycle-manager/cli/internal/registry"
	"github.com/poruru/lifecycle-manager/cli/internal/scenario"
)

type PipelineCmd struct {
	Platform string `help:"SCM platform (GitHub, GitLab, Bitbucket)"`
	Script   string `help:"Scenario file that defines the environments"`
}

func runPipeline(cli CLI, deps Dependencies, out io.Writer) int {
	rt, err := newCommandRuntime(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}

	name := strings.TrimSpace(cli.Pipeline.Platform)
	if name == "" {
		name = rt.Config.SCMPlatform
	}
	platform, err := pipeline.ParsePlatform(name)
	if err != nil {
		return exitWithSuggestionAndAvailable(out, err.Error(),
			[]string{meta.AppName + " pipeline --platform <name>"},
			pipeline.PlatformNames())
	}

	session := registry.NewSession()
	if path := strings.TrimSpace(cli.Pipeline.Script); path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return exitWithError(out, err)
		}
		result := scenario.Apply(session, sc, scenario.Options{Logger: rt.Logger})
		for _, failure := range result.Failures {
			rt.Console.Warn(failure.Error())
		}
	}

	summary, err := pipeline.Render(platform, session.Environments())
	if err != nil {
		return exitWithError(out, err)
	}
	rt.Console.Block(summary)
	return 0
}
