package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/domain"
)

func planFor(t *testing.T, fs *fakeFS, systems []*domain.Node, root string) domain.Plan {
	t.Helper()
	plan, err := NewPlanCommand(fs, systems, root).Execute(context.Background())
	if err != nil {
		t.Fatalf("planning failed: %v", err)
	}
	return plan
}

func TestApply_ExecutesPlanInOrder(t *testing.T) {
	fs := newFakeFS()
	systems := buildTestSystems(t)
	plan := planFor(t, fs, systems, "/vault")

	report, err := NewApplyCommand(fs, stubRenderer{}, plan, testTemplates()).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(report.Completed) != plan.Mutations() {
		t.Errorf("expected %d completed actions, got %d", plan.Mutations(), len(report.Completed))
	}
	if len(report.Skipped) != 0 || report.Failed != nil {
		t.Errorf("unexpected report: %+v", report)
	}

	if !fs.dirs["/vault/00 Home/10-19 Technology/10.10 Infra/10.10.10 Homelab/10.10.10.X01 Archives"] {
		t.Error("extended folder was not created inside its parent folder")
	}
	if _, ok := fs.files["/vault/00 Home/10-19 Technology/10.10 Infra/10.10 Infra.md"]; !ok {
		t.Error("folder-and-note markdown was not written inside its directory")
	}
}

func TestApply_RendersNoteContent(t *testing.T) {
	fs := newFakeFS()
	systems := buildTestSystems(t)
	plan := planFor(t, fs, systems, "/vault")

	if _, err := NewApplyCommand(fs, stubRenderer{}, plan, testTemplates()).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	content := fs.files["/vault/00 Home/00-09 Management/00.00 Index/00.00.01 Inbox.md"]
	if content != "note: 00.00.01 Inbox" {
		t.Errorf("unexpected note content: %q", content)
	}
}

func TestApply_RendersIndexForWholeSystem(t *testing.T) {
	fs := newFakeFS()
	systems := buildTestSystems(t)
	plan := planFor(t, fs, systems, "/vault")

	if _, err := NewApplyCommand(fs, stubRenderer{}, plan, testTemplates()).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	index := fs.files["/vault/00 Home/00-09 Management/00.00 Index/00.00.00 JDex.md"]
	expectedLines := []string{
		"# Home",
		"## 00-09 Management",
		"- 00.00 Index",
		"\t- 00.00.00 JDex",
		"\t- 00.00.01 Inbox",
		"## 10-19 Technology",
		"- 10.10 Infra",
		"\t- 10.10.10 Homelab",
		"\t\t- 10.10.10.X01 Archives",
	}
	for _, line := range expectedLines {
		if !strings.Contains(index, line+"\n") {
			t.Errorf("index missing line %q:\n%s", line, index)
		}
	}
}

func TestApply_SkipEntriesAreRecordedNotExecuted(t *testing.T) {
	fs := newFakeFS()
	systems := buildTestSystems(t)
	plan := planFor(t, fs, systems, "/vault")

	if _, err := NewApplyCommand(fs, stubRenderer{}, plan, testTemplates()).Execute(context.Background()); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	createdAfterFirst := len(fs.created)

	second := planFor(t, fs, systems, "/vault")
	report, err := NewApplyCommand(fs, stubRenderer{}, second, testTemplates()).Execute(context.Background())
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}

	if len(fs.created) != createdAfterFirst {
		t.Error("skip entries created directories")
	}
	// Only the regenerated index is written again.
	if len(report.Completed) != 1 {
		t.Errorf("expected 1 completed action, got %d", len(report.Completed))
	}
	if len(report.Skipped) != len(second)-1 {
		t.Errorf("expected %d skipped actions, got %d", len(second)-1, len(report.Skipped))
	}
}

func TestApply_StopsOnFirstFailure(t *testing.T) {
	fs := newFakeFS()
	systems := buildTestSystems(t)
	plan := planFor(t, fs, systems, "/vault")

	fs.failPath = "/vault/00 Home/10-19 Technology"

	report, err := NewApplyCommand(fs, stubRenderer{}, plan, testTemplates()).Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	if report.Failed == nil || report.Failed.Path != fs.failPath {
		t.Fatalf("unexpected failed action: %+v", report.Failed)
	}
	// Everything after the failed action is reported, never attempted.
	if len(report.Remaining) != 4 {
		t.Errorf("expected 4 remaining actions, got %d", len(report.Remaining))
	}
	for _, action := range report.Remaining {
		if fs.dirs[action.Path] {
			t.Errorf("remaining action was executed: %s", action.Path)
		}
	}
	// Prior actions stay on disk; there is no rollback.
	if !fs.dirs["/vault/00 Home/00-09 Management"] {
		t.Error("completed directory was rolled back")
	}
}

func TestApply_TemplateFailureAbortsRun(t *testing.T) {
	fs := newFakeFS()
	systems := buildTestSystems(t)
	plan := planFor(t, fs, systems, "/vault")

	renderErr := &application.TemplateError{Template: "{{bad", Err: errors.New("unclosed tag")}
	report, err := NewApplyCommand(fs, stubRenderer{err: renderErr}, plan, testTemplates()).Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, application.ErrTemplate) {
		t.Errorf("expected a template error, got %v", err)
	}
	if report.Failed == nil || report.Failed.Type != domain.ActionWriteFile {
		t.Errorf("expected failure at the first write action, got %+v", report.Failed)
	}
}
