// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/lifecycle-manager/cli/internal/constants"
	"github.com/poruru/lifecycle-manager/cli/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining ENV_PREFIX with the given suffix.
// Example: HostEnvKey("LOG_LEVEL") returns "PLM_LOG_LEVEL" when ENV_PREFIX is unset
func HostEnvKey(suffix string) string {
	prefix := strings.TrimSpace(os.Getenv(constants.EnvPrefixOverride))
	if prefix == "" {
		prefix = meta.EnvPrefix
	}
	return prefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("LOG_LEVEL") returns the value of PLM_LOG_LEVEL
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// LookupHostEnv is GetHostEnv that also reports whether the variable is set.
func LookupHostEnv(suffix string) (string, bool) {
	return os.LookupEnv(HostEnvKey(suffix))
}
