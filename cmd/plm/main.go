// Where: cli/cmd/plm/main.go
// What: CLI entrypoint.
// Why: Execute plm commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/lifecycle-manager/cli/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
