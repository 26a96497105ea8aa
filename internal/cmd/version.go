package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeroapp/create-zero-app/internal/bootstrap"
	"github.com/zeroapp/create-zero-app/internal/config"
	"github.com/zeroapp/create-zero-app/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(gc *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create-zero-app version information.

Displays:
  - CLI version, commit, and build date
  - git and package manager availability`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			pm := gc.PackageManager()
			if pm == "" {
				pm = bootstrap.DefaultPackageManager
			}

			tools := []version.ToolInfo{
				version.DetectTool(c.Context(), "git"),
				version.DetectTool(c.Context(), pm),
			}

			fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(version.GetInfo(), tools))
			return nil
		},
	}
}
