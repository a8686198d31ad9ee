// Where: cli/internal/app/tools.go
// What: Single-shot helpers for project IDs and environment colors.
// Why: Expose the derived values without starting a session.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/lifecycle-manager/cli/internal/palette"
	"github.com/poruru/lifecycle-manager/cli/internal/registry"
)

type (
	ExtractIDCmd struct {
		URL string `arg:"" name:"url" help:"Project link"`
	}
	ColorCmd struct {
		Names []string `arg:"" name:"name" help:"Environment names"`
	}
)

// runExtractID prints the project ID, or an empty line when the link does not match.
func runExtractID(cli CLI, _ Dependencies, out io.Writer) int {
	fmt.Fprintln(out, registry.ExtractProjectID(cli.ExtractID.URL))
	return 0
}

func runColor(cli CLI, _ Dependencies, out io.Writer) int {
	for _, name := range cli.Color.Names {
		fmt.Fprintf(out, "%s %s\n", palette.Style(name).Render(name), palette.ColorFor(name))
	}
	return 0
}
