package commands

import (
	"context"

	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/domain"
	"github.com/graysonarts/jdexmd/internal/ports"
)

// GenerateCommand runs the whole materialization: one walk for the notes
// root, and one directories-only walk for the optional reference root that
// mirrors folder shape for non-note files. Plans are computed up front; in
// dry-run mode they are returned unexecuted, otherwise they are applied in
// the same order they were planned.
type GenerateCommand struct {
	fs       ports.Filesystem
	renderer ports.Renderer

	Systems         []*domain.Node
	BaseFolder      string
	ReferenceFolder string
	Separator       string
	Templates       application.Templates
	DryRun          bool
}

// GenerateResult carries the plans for both roots and, outside dry-run, the
// apply reports.
type GenerateResult struct {
	NotesPlan     domain.Plan
	ReferencePlan domain.Plan

	NotesReport     *ApplyReport
	ReferenceReport *ApplyReport
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(fs ports.Filesystem, renderer ports.Renderer, systems []*domain.Node) *GenerateCommand {
	return &GenerateCommand{
		fs:        fs,
		renderer:  renderer,
		Systems:   systems,
		Separator: ".",
	}
}

// Validate checks if the generate operation is valid
func (c *GenerateCommand) Validate() error {
	if err := application.ValidateRequired("base_folder", c.BaseFolder); err != nil {
		return err
	}
	if len(c.Systems) == 0 {
		return &application.ValidationError{
			Field:   "systems",
			Message: "a resolved hierarchy is required",
		}
	}
	return nil
}

// Execute plans both roots and, unless DryRun is set, applies them. A failed
// apply aborts the rest of the run; the result still carries the partial
// reports so the caller can say what was completed.
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &GenerateResult{}

	notes := NewPlanCommand(c.fs, c.Systems, c.BaseFolder)
	notes.Separator = c.Separator
	plan, err := notes.Execute(ctx)
	if err != nil {
		return nil, err
	}
	result.NotesPlan = plan

	if c.ReferenceFolder != "" {
		reference := NewPlanCommand(c.fs, c.Systems, c.ReferenceFolder)
		reference.Separator = c.Separator
		reference.DirsOnly = true
		plan, err := reference.Execute(ctx)
		if err != nil {
			return nil, err
		}
		result.ReferencePlan = plan
	}

	if c.DryRun {
		return result, nil
	}

	apply := NewApplyCommand(c.fs, c.renderer, result.NotesPlan, c.Templates)
	apply.Separator = c.Separator
	result.NotesReport, err = apply.Execute(ctx)
	if err != nil {
		return result, err
	}

	if c.ReferenceFolder != "" {
		apply := NewApplyCommand(c.fs, c.renderer, result.ReferencePlan, c.Templates)
		apply.Separator = c.Separator
		result.ReferenceReport, err = apply.Execute(ctx)
		if err != nil {
			return result, err
		}
	}

	return result, nil
}
