// Package bootstrap runs the external commands that finish a new project:
// version control initialization and dependency installation.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/zeroapp/create-zero-app/internal/errors"
)

// RunOpts holds per-command execution settings.
type RunOpts struct {
	// Dir is the working directory.
	Dir string

	// Stdout and Stderr receive the command's output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes external commands. Implementations must block until the
// command exits.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) error
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command. A non-zero exit is reported as ErrCommand.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	line := strings.TrimSpace(name + " " + strings.Join(args, " "))

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return oerrors.Wrap(oerrors.ErrCommand, fmt.Sprintf("%s exited with status %d", line, exitErr.ExitCode()))
	}
	return fmt.Errorf("running %s: %w", line, err)
}
