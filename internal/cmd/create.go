package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/zeroapp/create-zero-app/internal/bootstrap"
	"github.com/zeroapp/create-zero-app/internal/config"
	oerrors "github.com/zeroapp/create-zero-app/internal/errors"
	"github.com/zeroapp/create-zero-app/internal/output"
	"github.com/zeroapp/create-zero-app/internal/prompt"
	"github.com/zeroapp/create-zero-app/internal/templates"
)

// createFlags are the flags of the root (create) command.
type createFlags struct {
	domain         string
	zoneID         string
	region         string
	answers        string
	templateDir    string
	packageManager string
	skipGit        bool
	skipInstall    bool
}

func (f *createFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.domain, "domain", "", "Production domain (skips the prompt)")
	c.Flags().StringVar(&f.zoneID, "zone-id", "", "Cloudflare zone ID (skips the prompt)")
	c.Flags().StringVar(&f.region, "region", "", "AWS region (skips the prompt)")
	c.Flags().StringVar(&f.answers, "answers", "", "YAML file with projectName, domain, dnsZoneId and region")
	c.Flags().StringVar(&f.templateDir, "template-dir", "", "Use an on-disk template directory (env: ZERO_APP_TEMPLATE_DIR)")
	c.Flags().StringVar(&f.packageManager, "package-manager", "", "Package manager used to install dependencies (env: ZERO_APP_PACKAGE_MANAGER, default pnpm)")
	c.Flags().BoolVar(&f.skipGit, "skip-git", false, "Do not initialize a git repository")
	c.Flags().BoolVar(&f.skipInstall, "skip-install", false, "Do not install dependencies")
}

func runCreate(c *cobra.Command, args []string, f *createFlags, gc *config.GlobalConfig, deps Dependencies) error {
	ctx := c.Context()

	known, err := knownAnswers(args, f)
	if err != nil {
		return exitError(err)
	}

	answers, err := prompt.Collect(ctx, deps.Prompter, prompt.Request{
		Known:         known,
		DefaultRegion: gc.Region(),
	})
	if errors.Is(err, oerrors.ErrCancelled) {
		output.Println("\nAborted.")
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
	}
	if err != nil {
		return exitError(err)
	}

	values := templates.Values{
		ProjectName: answers.ProjectName,
		Domain:      answers.Domain,
		DNSZoneID:   answers.DNSZoneID,
		Region:      answers.Region,
	}
	if err := values.Validate(); err != nil {
		return exitError(err)
	}

	source, err := templateSource(gc.TemplateDir())
	if err != nil {
		return exitError(err)
	}

	wd, err := deps.Getwd()
	if err != nil {
		return exitError(fmt.Errorf("getting working directory: %w", err))
	}

	gen := templates.NewGenerator(templates.GenerateOptions{
		WorkDir: wd,
		Source:  source,
		Fs:      deps.Fs,
		Values:  values,
	})

	output.Println(fmt.Sprintf("\nCreating %s...", values.ProjectName))

	result, err := gen.Generate()
	if err != nil {
		return exitError(err)
	}
	for _, r := range result.Table {
		output.Debug("replacement", "find", r.Find, "replace", r.Replace)
	}
	output.Debug("rewrote files", "count", len(result.Substituted))
	if len(result.Substituted) == 0 {
		output.Warn("template contains none of the placeholder tokens; nothing was replaced",
			"template", templateName(gc.TemplateDir()))
	}

	output.Println("")
	output.Print(output.RenderFileTree(values.ProjectName, templates.DescribeAll(result.Files)))

	pm := gc.PackageManager()
	b := bootstrap.New(deps.Runner, bootstrap.Options{
		Dir:            result.TargetDir,
		PackageManager: pm,
		SkipGit:        f.skipGit,
		SkipInstall:    f.skipInstall,
		Stdout:         output.Stdout(),
		Stderr:         c.ErrOrStderr(),
	})
	if err := b.Run(ctx); err != nil {
		return exitError(err)
	}

	output.Print(bootstrap.NextSteps(values.ProjectName, pm))
	return nil
}

// knownAnswers merges the answers file, the positional project name and the
// answer flags. Flags win over the file.
func knownAnswers(args []string, f *createFlags) (prompt.Answers, error) {
	var known prompt.Answers
	if f.answers != "" {
		fromFile, err := prompt.LoadAnswersFile(config.ExpandTilde(f.answers))
		if err != nil {
			return prompt.Answers{}, err
		}
		known = fromFile
	}

	fromFlags := prompt.Answers{
		Domain:    f.domain,
		DNSZoneID: f.zoneID,
		Region:    f.region,
	}
	if len(args) == 1 {
		fromFlags.ProjectName = args[0]
	}

	return known.Merge(fromFlags), nil
}

// templateSource returns the on-disk template when dir is set, otherwise the
// embedded one.
func templateSource(dir string) (fs.FS, error) {
	if dir == "" {
		return templates.Embedded(), nil
	}
	output.Debug("using template directory", "dir", dir)
	return templates.FromDir(dir)
}

func templateName(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}

// exitError attaches the exit code derived from err.
func exitError(err error) error {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}
