// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the binary name, env prefix, and home directory in one place.
package meta

const (
	// Project Identity
	AppName     = "plm"
	DisplayName = "Project Lifecycle Manager"
	EnvPrefix   = "PLM"

	// Directory Layout
	HomeDir        = ".plm"
	ConfigFileName = "config.yaml"
)
