package http

import (
	"embed"
	"html/template"
)

// homeTemplate is the template name rendered by the homepage handler.
const homeTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

// parseTemplates loads the view templates compiled into the binary. The
// files are embedded, so parsing cannot fail at runtime for missing assets;
// a broken template is caught the first time the test suite renders it.
func parseTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
