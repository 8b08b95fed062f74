package views

import (
	"strings"
	"testing"

	"github.com/graysonarts/jdexmd/internal/application"
)

type memFS struct {
	dirs map[string]bool
}

func (f memFS) DirExists(path string) (bool, error)  { return f.dirs[path], nil }
func (f memFS) FileExists(path string) (bool, error) { return false, nil }
func (f memFS) CreateDir(path string) error          { return nil }
func (f memFS) WriteFile(path string, _ []byte) error {
	return nil
}

func newPreview(t *testing.T) *PreviewModel {
	t.Helper()

	text := "00 Home\n" +
		"\t00-09 Management\n" +
		"\t\t00 !Index\n" +
		"\t10-19 Technology\n" +
		"\t\t10 Infra\n"
	systems, _, err := application.BuildSystems(text, "00", "Home")
	if err != nil {
		t.Fatalf("BuildSystems failed: %v", err)
	}

	m := NewPreviewModel(memFS{dirs: map[string]bool{"/vault": true}}, systems, "/vault", ".")
	msg := m.loadPlan()
	if err, ok := msg.(errMsg); ok {
		t.Fatalf("loadPlan failed: %v", err.err)
	}
	m.Update(msg)
	return m
}

func TestPreview_SystemsStartExpandedOneLevel(t *testing.T) {
	m := newPreview(t)

	// System row plus its two areas; categories stay collapsed.
	if len(m.visible) != 3 {
		t.Fatalf("expected 3 visible items, got %d", len(m.visible))
	}
	if m.visible[0].node.Level != application.LevelSystem {
		t.Errorf("first row is not the system: %+v", m.visible[0].node)
	}
	if m.visible[1].node.Token != "00-09" || m.visible[2].node.Token != "10-19" {
		t.Errorf("unexpected area rows: %s %s", m.visible[1].node.Token, m.visible[2].node.Token)
	}
}

func TestPreview_ExpandRevealsChildren(t *testing.T) {
	m := newPreview(t)

	area := m.visible[1]
	area.expanded = true
	m.refreshVisible()

	if len(m.visible) != 4 {
		t.Fatalf("expected 4 visible items after expand, got %d", len(m.visible))
	}
	if m.visible[2].node.Topic != "Index" {
		t.Errorf("expected the category under the expanded area, got %q", m.visible[2].node.Topic)
	}

	area.expanded = false
	m.refreshVisible()
	if len(m.visible) != 3 {
		t.Errorf("collapse did not hide children: %d visible", len(m.visible))
	}
}

func TestPreview_AnnotatesPlannedActions(t *testing.T) {
	m := newPreview(t)

	system := m.visible[0]
	annotation := m.renderAnnotation(system)
	if !strings.Contains(annotation, "create dir") {
		t.Errorf("expected a create annotation for a missing directory, got %q", annotation)
	}

	if path := m.itemPath(system); path != "/vault/00 Home" {
		t.Errorf("unexpected planned path: %q", path)
	}
}
