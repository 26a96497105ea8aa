package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// toolVersionRegex matches version output like "git version 2.43.0" or "9.12.1".
var toolVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// ToolInfo describes an external binary used after generation.
type ToolInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Path    string `json:"path,omitempty"`
	Found   bool   `json:"found"`
}

// DetectTool looks up name in PATH and asks it for its version.
func DetectTool(ctx context.Context, name string) ToolInfo {
	info := ToolInfo{Name: name}

	path, err := exec.LookPath(name)
	if err != nil {
		return info
	}
	info.Path = path
	info.Found = true

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return info
	}

	info.Version = extractVersion(out.String())
	return info
}

// extractVersion returns the first version-looking token in output, with a
// "v" prefix. It returns "" when none is found.
func extractVersion(output string) string {
	match := toolVersionRegex.FindString(output)
	if match == "" {
		return ""
	}
	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}
	return match
}

// String returns a human-readable tool line.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %-6s not found", t.Name)
	}
	v := t.Version
	if v == "" {
		v = "unknown"
	}
	return fmt.Sprintf("  %-6s %s (%s)", t.Name, v, t.Path)
}
