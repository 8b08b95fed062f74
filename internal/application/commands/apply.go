package commands

import (
	"context"
	"fmt"

	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/domain"
	"github.com/graysonarts/jdexmd/internal/ports"
)

// ApplyCommand executes a plan in order. On the first failure it stops,
// leaves prior actions in place, and reports what was and wasn't applied.
type ApplyCommand struct {
	fs       ports.Filesystem
	renderer ports.Renderer

	Plan      domain.Plan
	Templates application.Templates
	Separator string
}

// ApplyReport accounts for every plan entry after an apply run.
type ApplyReport struct {
	Completed []domain.Action
	Skipped   []domain.Action
	// Failed is the action that aborted the run, nil on success.
	Failed *domain.Action
	// Remaining are the actions never attempted because of the failure.
	Remaining []domain.Action
}

// NewApplyCommand creates a new ApplyCommand with the default "." separator.
func NewApplyCommand(fs ports.Filesystem, renderer ports.Renderer, plan domain.Plan, templates application.Templates) *ApplyCommand {
	return &ApplyCommand{
		fs:        fs,
		renderer:  renderer,
		Plan:      plan,
		Templates: templates,
		Separator: ".",
	}
}

// Execute runs the plan. The returned report is valid even when err is
// non-nil; callers use it to tell the user what already landed on disk.
func (c *ApplyCommand) Execute(ctx context.Context) (*ApplyReport, error) {
	report := &ApplyReport{}

	for i, action := range c.Plan {
		var err error
		switch action.Type {
		case domain.ActionSkip:
			report.Skipped = append(report.Skipped, action)
			continue

		case domain.ActionCreateDir:
			err = c.fs.CreateDir(action.Path)

		case domain.ActionWriteFile:
			var content string
			content, err = c.render(action)
			if err == nil {
				err = c.fs.WriteFile(action.Path, []byte(content))
			}
		}

		if err != nil {
			report.Failed = &c.Plan[i]
			report.Remaining = c.Plan[i+1:]
			return report, fmt.Errorf("%s %s: %w", action.Type, action.Path, err)
		}
		report.Completed = append(report.Completed, action)
	}

	return report, nil
}

func (c *ApplyCommand) render(action domain.Action) (string, error) {
	switch action.Content {
	case domain.ContentIndex:
		return application.RenderIndex(c.renderer, c.Templates, action.System, c.Separator)
	case domain.ContentNote:
		return application.RenderNote(c.renderer, c.Templates.Markdown, action.Node, c.Separator)
	default:
		return "", nil
	}
}
