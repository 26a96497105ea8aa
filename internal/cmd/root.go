// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zeroapp/create-zero-app/internal/bootstrap"
	"github.com/zeroapp/create-zero-app/internal/config"
	"github.com/zeroapp/create-zero-app/internal/output"
	"github.com/zeroapp/create-zero-app/internal/prompt"
	"github.com/zeroapp/create-zero-app/internal/templates"
	"github.com/zeroapp/create-zero-app/internal/version"
)

// Dependencies are the collaborators the commands talk to. Zero values are
// replaced with the real implementations.
type Dependencies struct {
	Prompter prompt.Prompter
	Runner   bootstrap.Runner
	Fs       afero.Fs
	Getwd    func() (string, error)
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Prompter == nil {
		d.Prompter = &prompt.HuhPrompter{Accessible: !output.IsInputTTY()}
	}
	if d.Runner == nil {
		d.Runner = bootstrap.NewExecRunner()
	}
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}
	if d.Getwd == nil {
		d.Getwd = os.Getwd
	}
	return d
}

// NewRootCmd creates the create-zero-app root command.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Dependencies{})
}

// NewRootCmdWithDeps creates the root command with the given collaborators.
func NewRootCmdWithDeps(deps Dependencies) *cobra.Command {
	deps = deps.withDefaults()

	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)
	gc := &config.GlobalConfig{}
	create := &createFlags{}

	rootCmd := &cobra.Command{
		Use:   "create-zero-app [project-name]",
		Short: "Create a new Zero App project",
		Long: `Create a new Zero App project from the bundled template.

The template is copied into ./<project-name>, placeholder names and tokens are
replaced with your answers, a git repository is initialized and dependencies
are installed.

Examples:
  # Answer everything interactively
  create-zero-app

  # Fully non-interactive
  create-zero-app my-app --domain example.com --zone-id abc123 --region eu-west-1

  # Read answers from a file
  create-zero-app --answers answers.yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, deps, gc, globalFlags{
				config:     configFlag,
				verbose:    verboseFlag,
				timestamps: timestampsFlag,
				pm:         create.packageManager,
				tmplDir:    create.templateDir,
			})
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, create, gc, deps)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: ZERO_APP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output (env: ZERO_APP_LOG_TIMESTAMPS)")

	create.register(rootCmd)

	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

type globalFlags struct {
	config     string
	verbose    bool
	timestamps bool
	pm         string
	tmplDir    string
}

// initializeGlobals loads .env and the config file, resolves every value and
// sets up logging.
func initializeGlobals(c *cobra.Command, deps Dependencies, gc *config.GlobalConfig, flags globalFlags) error {
	wd, err := deps.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	if err := config.LoadDotEnv(wd); err != nil {
		return err
	}

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	configPath, err := config.ResolveConfigPath(flags.config, env)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	cfg, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		return err
	}

	resolved := config.ResolveAll(config.ResolveAllOptions{
		PackageManagerFlag:    flags.pm,
		TemplateDirFlag:       flags.tmplDir,
		Env:                   env,
		Config:                cfg,
		DefaultRegion:         templates.DefaultRegion,
		DefaultPackageManager: bootstrap.DefaultPackageManager,
	})

	gc.Config = cfg
	gc.ConfigPath = configPath.Value
	gc.Resolved = resolved
	gc.Verbose = flags.verbose

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: config.ResolveTimestamps(c.Flags().Changed("timestamps"), flags.timestamps, env, cfg),
	})

	output.Debug("create-zero-app started", "version", version.Version, "workdir", wd)
	config.LogResolvedValues(append([]config.ResolvedValue{configPath}, resolved.Values()...))

	return nil
}
