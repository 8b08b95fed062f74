package handlebars

import (
	"github.com/aymerick/raymond"

	"github.com/graysonarts/jdexmd/internal/application"
)

// Renderer implements ports.Renderer with handlebars templates. Parsed
// templates are cached per source string since the same five templates are
// rendered once per node.
type Renderer struct {
	cache map[string]*raymond.Template
}

// New creates a new handlebars renderer
func New() *Renderer {
	return &Renderer{cache: make(map[string]*raymond.Template)}
}

// Render renders a template source against a node context. Parse and
// execution failures surface as application.TemplateError.
func (r *Renderer) Render(template string, ctx map[string]interface{}) (string, error) {
	tpl, ok := r.cache[template]
	if !ok {
		parsed, err := raymond.Parse(template)
		if err != nil {
			return "", &application.TemplateError{Template: template, Err: err}
		}
		r.cache[template] = parsed
		tpl = parsed
	}

	out, err := tpl.Exec(ctx)
	if err != nil {
		return "", &application.TemplateError{Template: template, Err: err}
	}
	return out, nil
}
