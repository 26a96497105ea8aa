// Package version provides version information for create-zero-app.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("create-zero-app:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
}

// FullVersionString returns version information followed by the external
// tools the bootstrap step needs.
func FullVersionString(info Info, tools []ToolInfo) string {
	var sb strings.Builder
	sb.WriteString(info.String())
	if len(tools) == 0 {
		return sb.String()
	}

	sb.WriteString("\n\nTools:")
	for _, t := range tools {
		sb.WriteString("\n")
		sb.WriteString(t.String())
	}
	return sb.String()
}
