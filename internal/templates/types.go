package templates

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"

	oerrors "github.com/zeroapp/create-zero-app/internal/errors"
)

// Values holds the answers that drive substitution.
type Values struct {
	// ProjectName is the hyphenated project slug (e.g., "my-app").
	// It also names the target directory.
	ProjectName string `validate:"projectname"`

	// Domain is the production domain.
	Domain string `validate:"required"`

	// DNSZoneID is the Cloudflare zone identifier for Domain.
	DNSZoneID string `validate:"required"`

	// Region is the AWS region. Empty or DefaultRegion leaves the template
	// region untouched.
	Region string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return ValidateProjectName(fl.Field().String()) == nil
	})
	return v
}

// requiredMessages are shown when a required value is empty.
var requiredMessages = map[string]struct{ message, hint string }{
	"Domain":    {"Production domain is required.", "Pass --domain or answer the prompt."},
	"DNSZoneID": {"Cloudflare zone ID is required.", "Pass --zone-id or answer the prompt."},
}

// Validate checks the required values in field order and reports the first
// failure. Nothing is written before it passes.
func (v Values) Validate() error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validating values: %w", err)
	}

	field := fieldErrs[0].Field()
	if field == "ProjectName" {
		return oerrors.NewValidationError(ValidateProjectName(v.ProjectName).Error(), "",
			"Use a single directory name such as my-app.")
	}
	if m, ok := requiredMessages[field]; ok {
		return oerrors.NewValidationError(m.message, "", m.hint)
	}
	return oerrors.NewValidationError(fieldErrs[0].Error(), "", "")
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// WorkDir is the directory the project directory is created in.
	WorkDir string

	// Source is the template tree. Defaults to Embedded().
	Source fs.FS

	// Fs is the filesystem written to. Defaults to the OS filesystem.
	Fs afero.Fs

	// Values drive substitution.
	Values Values
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// TargetDir is the created project directory.
	TargetDir string

	// Files lists every created file relative to TargetDir, slash-separated.
	Files []string

	// Substituted lists the files whose content was rewritten.
	Substituted []string

	// Table is the substitution table that was applied.
	Table Table
}
