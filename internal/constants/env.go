// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Host-level suffixes, combined with the env prefix by envutil.HostEnvKey.
const (
	HostSuffixConfigPath  = "CONFIG_PATH"
	HostSuffixConfigHome  = "CONFIG_HOME"
	HostSuffixLogLevel    = "LOG_LEVEL"
	HostSuffixSCMPlatform = "SCM_PLATFORM"
	HostSuffixNoEmoji     = "NO_EMOJI"
)

// EnvPrefixOverride renames the host-level prefix (default PLM).
const EnvPrefixOverride = "ENV_PREFIX"
