package commands

import (
	"fmt"
	"strings"
	"testing"

	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/domain"
)

// fakeFS is an in-memory ports.Filesystem for command tests.
type fakeFS struct {
	dirs  map[string]bool
	files map[string]string

	created []string
	written []string

	// failPath makes CreateDir/WriteFile fail for one path.
	failPath string
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		dirs:  make(map[string]bool),
		files: make(map[string]string),
	}
}

func (f *fakeFS) DirExists(path string) (bool, error) {
	return f.dirs[path], nil
}

func (f *fakeFS) FileExists(path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

func (f *fakeFS) CreateDir(path string) error {
	if path == f.failPath {
		return fmt.Errorf("disk full")
	}
	f.dirs[path] = true
	f.created = append(f.created, path)
	return nil
}

func (f *fakeFS) WriteFile(path string, content []byte) error {
	if path == f.failPath {
		return fmt.Errorf("disk full")
	}
	f.files[path] = string(content)
	f.written = append(f.written, path)
	return nil
}

// stubRenderer substitutes {{key}} placeholders without a template engine.
type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(template string, ctx map[string]interface{}) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	out := template
	for key, value := range ctx {
		out = strings.ReplaceAll(out, "{{"+key+"}}", fmt.Sprint(value))
	}
	return out, nil
}

const testHierarchy = "00 Home\n" +
	"\t00-09 Management\n" +
	"\t\t00 Index\n" +
	"\t\t\t00 !JDex\n" +
	"\t\t\t01 -Inbox\n" +
	"\t10-19 Technology\n" +
	"\t\t10 +Infra\n" +
	"\t\t\t10 Homelab\n" +
	"\t\t\t\tX01 Archives\n"

func buildTestSystems(t *testing.T) []*domain.Node {
	t.Helper()
	systems, _, err := application.BuildSystems(testHierarchy, "00", "Home")
	if err != nil {
		t.Fatalf("BuildSystems failed: %v", err)
	}
	return systems
}

func testTemplates() application.Templates {
	return application.Templates{
		System:   "# {{name}}",
		Area:     "## {{id}} {{topic}}",
		Category: "- {{id}} {{topic}}",
		Folder:   "\t- {{id}} {{topic}}",
		XFolder:  "\t\t- {{id}} {{topic}}",
		Markdown: "note: {{id}} {{topic}}",
	}
}
