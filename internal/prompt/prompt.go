package prompt

import (
	"context"
	"strings"
)

// DefaultProjectName is offered when no project name was given.
const DefaultProjectName = "my-app"

// Request describes what to ask.
type Request struct {
	// Known holds values supplied up front. Non-empty fields are not asked.
	Known Answers

	// DefaultProjectName prefills the project name prompt.
	DefaultProjectName string

	// DefaultRegion prefills the region prompt and replaces a blank answer.
	DefaultRegion string
}

// Prompter asks the user for the fields missing from a request.
type Prompter interface {
	Prompt(ctx context.Context, req Request) (Answers, error)
}

// Collect asks for any missing answers and applies defaults. Required fields
// are not checked here; callers validate before writing anything.
func Collect(ctx context.Context, p Prompter, req Request) (Answers, error) {
	if req.DefaultProjectName == "" {
		req.DefaultProjectName = DefaultProjectName
	}

	answers := req.Known
	if !answers.Complete() {
		asked, err := p.Prompt(ctx, req)
		if err != nil {
			return Answers{}, err
		}
		answers = answers.Merge(asked)
	}

	answers = trim(answers)
	if answers.ProjectName == "" {
		answers.ProjectName = req.DefaultProjectName
	}
	if answers.Region == "" {
		answers.Region = req.DefaultRegion
	}
	return answers, nil
}

func trim(a Answers) Answers {
	return Answers{
		ProjectName: strings.TrimSpace(a.ProjectName),
		Domain:      strings.TrimSpace(a.Domain),
		DNSZoneID:   strings.TrimSpace(a.DNSZoneID),
		Region:      strings.TrimSpace(a.Region),
	}
}
