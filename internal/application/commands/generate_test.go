package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/graysonarts/jdexmd/internal/application"
)

func newGenerate(fs *fakeFS, systems []*application.Node) *GenerateCommand {
	cmd := NewGenerateCommand(fs, stubRenderer{}, systems)
	cmd.BaseFolder = "/vault"
	cmd.ReferenceFolder = "/ref"
	cmd.Templates = testTemplates()
	return cmd
}

func TestGenerate_DryRunWritesNothing(t *testing.T) {
	fs := newFakeFS()
	cmd := newGenerate(fs, buildTestSystems(t))
	cmd.DryRun = true

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.NotesPlan) == 0 || len(result.ReferencePlan) == 0 {
		t.Fatal("dry run returned empty plans")
	}
	if result.NotesReport != nil || result.ReferenceReport != nil {
		t.Error("dry run produced apply reports")
	}
	if len(fs.created) != 0 || len(fs.written) != 0 {
		t.Errorf("dry run touched the filesystem: created=%v written=%v", fs.created, fs.written)
	}
}

func TestGenerate_DryRunPlanMatchesRealRunPlan(t *testing.T) {
	systems := buildTestSystems(t)

	dry := newGenerate(newFakeFS(), systems)
	dry.DryRun = true
	dryResult, err := dry.Execute(context.Background())
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	live := newGenerate(newFakeFS(), systems)
	realResult, err := live.Execute(context.Background())
	if err != nil {
		t.Fatalf("real run failed: %v", err)
	}

	if dryResult.NotesPlan.String() != realResult.NotesPlan.String() {
		t.Errorf("notes plans differ:\n--- dry ---\n%s--- real ---\n%s",
			dryResult.NotesPlan, realResult.NotesPlan)
	}
	if dryResult.ReferencePlan.String() != realResult.ReferencePlan.String() {
		t.Errorf("reference plans differ:\n--- dry ---\n%s--- real ---\n%s",
			dryResult.ReferencePlan, realResult.ReferencePlan)
	}
}

func TestGenerate_AppliesBothRoots(t *testing.T) {
	fs := newFakeFS()
	cmd := newGenerate(fs, buildTestSystems(t))

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.NotesReport == nil || result.ReferenceReport == nil {
		t.Fatal("missing apply reports")
	}
	if len(result.NotesReport.Completed) != result.NotesPlan.Mutations() {
		t.Errorf("notes: expected %d completed, got %d",
			result.NotesPlan.Mutations(), len(result.NotesReport.Completed))
	}

	if !fs.dirs["/ref/00 Home/10-19 Technology/10.10 Infra"] {
		t.Error("reference root directories were not mirrored")
	}
	for path := range fs.files {
		if strings.HasPrefix(path, "/ref/") {
			t.Errorf("reference root must hold directories only, found file %s", path)
		}
	}
}

func TestGenerate_SecondRunOnlyRewritesIndex(t *testing.T) {
	fs := newFakeFS()
	systems := buildTestSystems(t)

	if _, err := newGenerate(fs, systems).Execute(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	result, err := newGenerate(fs, systems).Execute(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if len(result.NotesReport.Completed) != 1 {
		t.Errorf("expected only the index rewrite, got %d completed actions",
			len(result.NotesReport.Completed))
	}
	if len(result.ReferenceReport.Completed) != 0 {
		t.Errorf("reference root should be fully skipped on second run, got %d completed",
			len(result.ReferenceReport.Completed))
	}
}

func TestGenerate_NoReferenceFolder(t *testing.T) {
	fs := newFakeFS()
	cmd := newGenerate(fs, buildTestSystems(t))
	cmd.ReferenceFolder = ""

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.ReferencePlan != nil || result.ReferenceReport != nil {
		t.Error("reference artifacts produced without a reference folder")
	}
}

func TestGenerate_Validate(t *testing.T) {
	fs := newFakeFS()
	cmd := newGenerate(fs, buildTestSystems(t))
	cmd.BaseFolder = ""

	_, err := cmd.Execute(context.Background())
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if valErr.Field != "base_folder" {
		t.Errorf("expected base_folder validation, got %s", valErr.Field)
	}
}

func TestGenerate_PartialResultOnFailure(t *testing.T) {
	fs := newFakeFS()
	cmd := newGenerate(fs, buildTestSystems(t))
	fs.failPath = "/vault/00 Home/10-19 Technology"

	result, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if result == nil {
		t.Fatal("failed run must still return the partial result")
	}
	if result.NotesReport == nil || result.NotesReport.Failed == nil {
		t.Fatal("partial result missing the failure report")
	}
	if result.ReferenceReport != nil {
		t.Error("reference root should never be attempted after a notes failure")
	}
}
