// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Report a release tag when stamped, else the VCS revision from build info.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is stamped at release time via -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the stamped release version, or the short VCS revision
// with a "(dirty)" suffix for modified trees, or "dev" when neither is known.
func GetVersion() string {
	if Version != "" {
		return Version
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
