// Where: cli/internal/app/error_helpers.go
// What: Error output helpers for commands.
// Why: Keep failure output and exit codes uniform across commands.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/lifecycle-manager/cli/internal/ui"
)

// exitWithError prints err and returns exit code 1.
func exitWithError(out io.Writer, err error) int {
	ui.New(out).Error(err.Error())
	return 1
}

// exitWithSuggestion prints an error with suggested next steps.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	ui.New(out).Error(message)
	if len(suggestions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		for _, s := range suggestions {
			fmt.Fprintf(out, "  - %s\n", s)
		}
	}
	return 1
}

// exitWithSuggestionAndAvailable prints an error with suggestions and available options.
func exitWithSuggestionAndAvailable(out io.Writer, message string, suggestions, available []string) int {
	exitWithSuggestion(out, message, suggestions)
	if len(available) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Available:")
		for _, a := range available {
			fmt.Fprintf(out, "  - %s\n", a)
		}
	}
	return 1
}
