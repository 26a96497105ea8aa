package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	oerrors "github.com/zeroapp/create-zero-app/internal/errors"
)

// HuhPrompter asks questions with a huh form.
type HuhPrompter struct {
	// In and Out override the terminal. Nil means stdin/stdout.
	In  io.Reader
	Out io.Writer

	// Accessible switches to line-based prompts, used when stdin is not a
	// terminal. Each missing value is read from its own input line.
	Accessible bool
}

// question is one missing value. value starts at its default.
type question struct {
	title string
	value *string
}

// Prompt implements Prompter. Only the fields missing from req.Known are asked.
func (p *HuhPrompter) Prompt(ctx context.Context, req Request) (Answers, error) {
	answers := req.Known
	var questions []question

	if answers.ProjectName == "" {
		answers.ProjectName = req.DefaultProjectName
		questions = append(questions, question{"Project name:", &answers.ProjectName})
	}
	if answers.Domain == "" {
		questions = append(questions, question{"Production domain:", &answers.Domain})
	}
	if answers.DNSZoneID == "" {
		questions = append(questions, question{"Cloudflare zone ID:", &answers.DNSZoneID})
	}
	if answers.Region == "" {
		answers.Region = req.DefaultRegion
		questions = append(questions, question{"AWS region:", &answers.Region})
	}

	if len(questions) == 0 {
		return answers, nil
	}

	var err error
	if p.Accessible {
		err = p.askLines(ctx, questions)
	} else {
		err = p.askForm(ctx, questions)
	}
	if err != nil {
		return Answers{}, mapPromptError(err)
	}

	return answers, nil
}

// askForm runs one huh form holding every question.
func (p *HuhPrompter) askForm(ctx context.Context, questions []question) error {
	fields := make([]huh.Field, 0, len(questions))
	for _, q := range questions {
		fields = append(fields, huh.NewInput().
			Title(q.title).
			Value(q.value))
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}
	return form.RunWithContext(ctx)
}

// askLines reads one line per question from a single buffered reader. huh's
// accessible inputs buffer their own reader per field, which swallows the
// lines meant for later questions. An empty line or end of input keeps the
// default.
func (p *HuhPrompter) askLines(ctx context.Context, questions []question) error {
	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	r := bufio.NewReader(in)
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return err
		}

		label := q.title
		if *q.value != "" {
			label += " (" + *q.value + ")"
		}
		fmt.Fprint(out, label+" ")

		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		fmt.Fprintln(out)

		if line = strings.TrimRight(line, "\r\n"); line != "" {
			*q.value = line
		}
	}
	return nil
}

// mapPromptError turns user aborts into ErrCancelled.
func mapPromptError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return oerrors.ErrCancelled
	}
	return fmt.Errorf("prompting for answers: %w", err)
}
