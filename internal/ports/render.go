package ports

// Renderer turns a template string and a node context into final text.
// Failures surface as application.TemplateError.
type Renderer interface {
	Render(template string, ctx map[string]interface{}) (string, error)
}
