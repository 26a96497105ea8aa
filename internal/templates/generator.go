package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	oerrors "github.com/zeroapp/create-zero-app/internal/errors"
	"github.com/zeroapp/create-zero-app/internal/output"
)

// Generator materializes a project from a template.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	if opts.Source == nil {
		opts.Source = Embedded()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	return &Generator{opts: opts}
}

// TargetDir returns the directory the project is generated into.
func (g *Generator) TargetDir() string {
	return filepath.Join(g.opts.WorkDir, g.opts.Values.ProjectName)
}

// Generate copies the template, restores dotfiles and applies substitutions.
// A failure after the target directory was created leaves it in place.
func (g *Generator) Generate() (*GenerateResult, error) {
	values := g.opts.Values
	if err := values.Validate(); err != nil {
		return nil, err
	}

	targetDir := g.TargetDir()
	if err := g.checkTargetDir(targetDir); err != nil {
		return nil, err
	}

	log := output.ProjectLogger(values.ProjectName)
	log.Debug("generating project", "target", targetDir, "region", values.Region)

	files, err := CopyTree(g.opts.Source, g.opts.Fs, targetDir)
	if err != nil {
		return nil, fmt.Errorf("copying template: %w", err)
	}
	log.Debug("copied template", "files", len(files))

	restored, err := RestoreDotfiles(g.opts.Fs, targetDir)
	if err != nil {
		return nil, fmt.Errorf("restoring dotfiles: %w", err)
	}
	for _, name := range restored {
		log.Debug("restored dotfile", "file", name)
	}
	files = lo.Map(files, func(f string, _ int) string {
		if lo.Contains(restored, "."+f) {
			return "." + f
		}
		return f
	})
	slices.Sort(files)

	table := BuildTable(values)
	substituted, err := SubstituteTree(g.opts.Fs, targetDir, table)
	if err != nil {
		return nil, fmt.Errorf("applying replacements: %w", err)
	}
	log.Debug("applied replacements", "rules", len(table), "files", len(substituted))

	return &GenerateResult{
		TargetDir:   targetDir,
		Files:       files,
		Substituted: substituted,
		Table:       table,
	}, nil
}

// checkTargetDir refuses any existing path.
func (g *Generator) checkTargetDir(targetDir string) error {
	_, err := g.opts.Fs.Stat(targetDir)
	if err == nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("Directory %q already exists.", g.opts.Values.ProjectName),
			Location: targetDir,
			Hint:     "Choose a different project name or remove the existing directory.",
			Cause:    oerrors.ErrValidation,
		}
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking target directory: %w", err)
	}
	return nil
}
