// Package prompt collects the answers that parameterize a new project.
package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	oerrors "github.com/zeroapp/create-zero-app/internal/errors"
)

// Answers are the values gathered from flags, an answers file or prompts.
type Answers struct {
	ProjectName string `yaml:"projectName"`
	Domain      string `yaml:"domain"`
	DNSZoneID   string `yaml:"dnsZoneId"`
	Region      string `yaml:"region"`
}

// Merge returns a copy of a with every non-empty field of over applied.
func (a Answers) Merge(over Answers) Answers {
	if over.ProjectName != "" {
		a.ProjectName = over.ProjectName
	}
	if over.Domain != "" {
		a.Domain = over.Domain
	}
	if over.DNSZoneID != "" {
		a.DNSZoneID = over.DNSZoneID
	}
	if over.Region != "" {
		a.Region = over.Region
	}
	return a
}

// Complete reports whether no prompt is needed.
func (a Answers) Complete() bool {
	return a.ProjectName != "" && a.Domain != "" && a.DNSZoneID != "" && a.Region != ""
}

// LoadAnswersFile reads answers from a YAML file. Unknown keys are rejected.
func LoadAnswersFile(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Answers{}, oerrors.NewNotFoundError("answers file not found", path, "")
	}
	if err != nil {
		return Answers{}, fmt.Errorf("reading answers file: %w", err)
	}

	var answers Answers
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&answers); err != nil && !errors.Is(err, io.EOF) {
		return Answers{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid answers file: %v", err), path,
			"Valid keys: projectName, domain, dnsZoneId, region.")
	}

	return answers, nil
}
