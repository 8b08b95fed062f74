package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/domain"
	"github.com/graysonarts/jdexmd/internal/ports"
)

// PlanCommand walks the resolved tree once, depth-first in source order, and
// produces the ordered action plan for one output root. Planning only reads
// the filesystem; nothing is mutated until ApplyCommand runs the plan.
type PlanCommand struct {
	fs ports.Filesystem

	Systems   []*domain.Node
	Root      string
	Separator string
	// DirsOnly restricts the plan to directory actions; the reference root
	// mirrors folder shape without note content.
	DirsOnly bool
}

// NewPlanCommand creates a new PlanCommand with the default "." separator.
func NewPlanCommand(fs ports.Filesystem, systems []*domain.Node, root string) *PlanCommand {
	return &PlanCommand{
		fs:        fs,
		Systems:   systems,
		Root:      root,
		Separator: ".",
	}
}

// Validate checks if the plan inputs are usable
func (c *PlanCommand) Validate() error {
	if err := application.ValidateRequired("root", c.Root); err != nil {
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

// Execute computes the plan. Planning fails on the first path conflict and
// returns no plan, so a conflicting tree never gets partially applied.
func (c *PlanCommand) Execute(ctx context.Context) (domain.Plan, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var plan domain.Plan
	if err := c.planDir(&plan, c.Root, nil); err != nil {
		return nil, err
	}
	for _, system := range c.Systems {
		if err := c.visit(&plan, system, c.Root, system); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// visit applies the per-node decision table: folders get a directory, notes
// get a markdown file in the parent directory, folder-and-note entries get
// both (note inside the new directory), and the index entry gets the
// regenerated JDex file.
func (c *PlanCommand) visit(plan *domain.Plan, n *domain.Node, parentDir string, system *domain.Node) error {
	name := n.DisplayName(c.Separator)

	switch n.Kind {
	case domain.KindFolder, domain.KindFolderAndNote:
		dir := filepath.Join(parentDir, name)
		if err := c.planDir(plan, dir, n); err != nil {
			return err
		}
		if n.Kind == domain.KindFolderAndNote && !c.DirsOnly {
			if err := c.planNote(plan, filepath.Join(dir, name+".md"), n); err != nil {
				return err
			}
		}
		for _, child := range n.Children {
			if err := c.visit(plan, child, dir, system); err != nil {
				return err
			}
		}

	case domain.KindNote:
		if !c.DirsOnly {
			if err := c.planNote(plan, filepath.Join(parentDir, name+".md"), n); err != nil {
				return err
			}
		}

	case domain.KindIndex:
		if !c.DirsOnly {
			if err := c.planIndex(plan, filepath.Join(parentDir, name+".md"), n, system); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *PlanCommand) planDir(plan *domain.Plan, path string, n *domain.Node) error {
	isDir, err := c.fs.DirExists(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if isDir {
		*plan = append(*plan, domain.Action{
			Type:   domain.ActionSkip,
			Path:   path,
			Reason: "directory already exists",
			Node:   n,
		})
		return nil
	}

	isFile, err := c.fs.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if isFile {
		return &application.PathConflictError{Path: path, Reason: "expected a directory, found a file"}
	}

	*plan = append(*plan, domain.Action{
		Type: domain.ActionCreateDir,
		Path: path,
		Node: n,
	})
	return nil
}

// planNote is create-if-absent: existing markdown is hand-edited territory
// and is never overwritten.
func (c *PlanCommand) planNote(plan *domain.Plan, path string, n *domain.Node) error {
	isFile, err := c.fs.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if isFile {
		*plan = append(*plan, domain.Action{
			Type:   domain.ActionSkip,
			Path:   path,
			Reason: "note already exists",
			Node:   n,
		})
		return nil
	}

	isDir, err := c.fs.DirExists(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if isDir {
		return &application.PathConflictError{Path: path, Reason: "expected a file, found a directory"}
	}

	*plan = append(*plan, domain.Action{
		Type:    domain.ActionWriteFile,
		Path:    path,
		Node:    n,
		Content: domain.ContentNote,
	})
	return nil
}

// planIndex always writes: the JDex is derived, never hand-authored.
func (c *PlanCommand) planIndex(plan *domain.Plan, path string, n, system *domain.Node) error {
	isDir, err := c.fs.DirExists(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if isDir {
		return &application.PathConflictError{Path: path, Reason: "expected a file, found a directory"}
	}

	*plan = append(*plan, domain.Action{
		Type:    domain.ActionWriteFile,
		Path:    path,
		Reason:  "index is regenerated every run",
		Node:    n,
		Content: domain.ContentIndex,
		System:  system,
	})
	return nil
}
