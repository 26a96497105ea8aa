package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zeroapp/create-zero-app/internal/output"
)

// DefaultPackageManager installs dependencies when none is configured.
const DefaultPackageManager = "pnpm"

// Options configures the bootstrap steps.
type Options struct {
	// Dir is the generated project directory.
	Dir string

	// PackageManager runs "<pm> install". Defaults to DefaultPackageManager.
	PackageManager string

	// SkipGit and SkipInstall disable the respective step.
	SkipGit     bool
	SkipInstall bool

	// Stdout and Stderr receive the install output. Nil means os.Stdout and
	// os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Bootstrapper runs git init and the dependency install, one after the other.
type Bootstrapper struct {
	runner Runner
	opts   Options
}

// New creates a Bootstrapper.
func New(runner Runner, opts Options) *Bootstrapper {
	if opts.PackageManager == "" {
		opts.PackageManager = DefaultPackageManager
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Bootstrapper{runner: runner, opts: opts}
}

// Run initializes the repository with its output silenced, then installs
// dependencies with output streamed. The first failure stops the sequence.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if !b.opts.SkipGit {
		err := output.RunWithSpinner(ctx, func() error {
			return b.runner.Run(ctx, "git", []string{"init"}, RunOpts{Dir: b.opts.Dir})
		}, output.WithTitle("Initializing git repository..."))
		if err != nil {
			return fmt.Errorf("initializing git repository: %w", err)
		}
		output.Debug("initialized git repository", "dir", b.opts.Dir)
	} else {
		output.Info("skipping git init", "dir", b.opts.Dir)
	}

	if !b.opts.SkipInstall {
		output.Println("Installing dependencies...")
		err := b.runner.Run(ctx, b.opts.PackageManager, []string{"install"}, RunOpts{
			Dir:    b.opts.Dir,
			Stdout: b.opts.Stdout,
			Stderr: b.opts.Stderr,
		})
		if err != nil {
			return fmt.Errorf("installing dependencies: %w", err)
		}
	} else {
		output.Info("skipping dependency install", "run", b.opts.PackageManager+" install")
	}

	return nil
}

// NextSteps renders the guidance printed after a successful run.
func NextSteps(projectName, packageManager string) string {
	if packageManager == "" {
		packageManager = DefaultPackageManager
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(output.FormatCheckmark("Done! Next steps:"))
	b.WriteString("\n\n")
	for _, cmd := range []string{
		"cd " + projectName,
		"docker compose -f docker-compose.dev.yml up -d",
		packageManager + " db:migrate",
		packageManager + " dev",
	} {
		b.WriteString("  " + output.FormatCommand(cmd) + "\n")
	}
	b.WriteString("\nOpen http://localhost:3000\n\n")
	b.WriteString(output.StyleReminder.Render("Before deploying, search for TODO: in the codebase for values"))
	b.WriteString("\n")
	b.WriteString(output.StyleReminder.Render("that need to be filled after running:"))
	b.WriteString("\n\n")
	b.WriteString("  " + output.FormatCommand("npx sst deploy --stage dev --config sst.dev.config.ts") + "\n")
	return b.String()
}
