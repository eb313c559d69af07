package tag

import (
	"html/template"

	"github.com/avercin/chartembed/chart"
)

// FuncMap returns helpers for html/template hosts:
//
//	chart        - render a fragment from configuration text
//	chartInclude - emit the charting library's script include tag
//
// Results are template.HTML so the host does not re-escape the fragment.
// A nil renderer means the package-level one (see Use).
func FuncMap(r *chart.Renderer) template.FuncMap {
	render := func() *chart.Renderer {
		if r != nil {
			return r
		}
		return current()
	}
	return template.FuncMap{
		"chart": func(content string) template.HTML {
			return template.HTML(render().Render(content))
		},
		"chartInclude": func() template.HTML {
			return template.HTML(render().ScriptInclude())
		},
	}
}
