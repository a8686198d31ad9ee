// Where: cli/internal/app/version.go
// What: Version command.
// Why: Print the build revision alongside the binary name.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/lifecycle-manager/cli/internal/meta"
	"github.com/poruru/lifecycle-manager/cli/internal/version"
)

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintf(out, "%s %s\n", meta.AppName, version.GetVersion())
	return 0
}
