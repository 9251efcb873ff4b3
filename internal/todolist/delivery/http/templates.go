package http

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the HTML pages rendered by this package. The engine
// serving RegisterRoutes must use them via SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.New("todolist").ParseFS(templatesFS, "templates/*.html"))
}
