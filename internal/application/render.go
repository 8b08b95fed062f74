package application

import (
	"strings"

	"github.com/graysonarts/jdexmd/internal/domain"
	"github.com/graysonarts/jdexmd/internal/ports"
)

// Templates holds the template source per hierarchy level, plus the markdown
// front-matter template used for plain note files.
type Templates struct {
	System   string
	Area     string
	Category string
	Folder   string
	XFolder  string
	Markdown string
}

// ForLevel selects the listing template for a node's tier.
func (t Templates) ForLevel(level domain.Level) string {
	switch level {
	case domain.LevelSystem:
		return t.System
	case domain.LevelArea:
		return t.Area
	case domain.LevelCategory:
		return t.Category
	case domain.LevelFolder:
		return t.Folder
	default:
		return t.XFolder
	}
}

// RenderNote renders the markdown front-matter template for a single node.
func RenderNote(r ports.Renderer, markdown string, n *domain.Node, sep string) (string, error) {
	return r.Render(markdown, domain.TemplateContext(n, sep))
}

// RenderIndex composes the full-system JDex listing by walking the entire
// tree in source order and rendering one line per node with the template for
// its tier.
func RenderIndex(r ports.Renderer, t Templates, system *domain.Node, sep string) (string, error) {
	var (
		b       strings.Builder
		walkErr error
	)
	system.Walk(func(n *domain.Node) bool {
		out, err := r.Render(t.ForLevel(n.Level), domain.TemplateContext(n, sep))
		if err != nil {
			walkErr = err
			return false
		}
		b.WriteString(out)
		b.WriteByte('\n')
		return true
	})
	if walkErr != nil {
		return "", walkErr
	}
	return b.String(), nil
}
