// Package chart renders embeddable chart fragments for static sites: a
// uniquely identified container element plus an inline script that
// instantiates a client-side charting library against it.
//
// The configuration text is passed through verbatim (it is parsed
// client-side, as JSON or a JS object literal), so a fragment is fully
// self-contained and the render step never fails.
package chart

import (
	"regexp"
	"strings"
)

// Defaults used by New when the corresponding Options field is zero.
const (
	DefaultElement   = "div"
	DefaultClass     = "chart"
	DefaultGlobal    = "ApexCharts"
	DefaultIDPrefix  = "chart"
	DefaultIDLength  = 8
	DefaultScriptSrc = "https://cdn.jsdelivr.net/npm/apexcharts"
)

// Options configures a Renderer. The zero value yields the defaults above.
type Options struct {
	// Element is the tag name of the container element.
	Element string
	// Class is the container's class attribute. Set to "-" to omit the
	// attribute entirely.
	Class string
	// Global is the client-side constructor the emitted script calls,
	// e.g. "ApexCharts".
	Global string
	// IDPrefix and IDLength shape ids from the default token source.
	// Ignored when IDs is set.
	IDPrefix string
	IDLength int
	// ScriptSrc is the URL emitted by ScriptInclude.
	ScriptSrc string
	// IDs supplies anchor ids. Defaults to a random token source.
	IDs IDSource
}

// Renderer turns chart-configuration text into HTML fragments.
// Renders are independent; no state is shared between calls beyond the
// id source.
type Renderer struct {
	element   string
	class     string
	global    string
	scriptSrc string
	ids       IDSource
}

// New returns a Renderer with zero Options fields replaced by defaults.
func New(opts Options) *Renderer {
	r := &Renderer{
		element:   opts.Element,
		class:     opts.Class,
		global:    opts.Global,
		scriptSrc: opts.ScriptSrc,
		ids:       opts.IDs,
	}
	if r.element == "" {
		r.element = DefaultElement
	}
	if r.class == "" {
		r.class = DefaultClass
	} else if r.class == "-" {
		r.class = ""
	}
	if r.global == "" {
		r.global = DefaultGlobal
	}
	if r.scriptSrc == "" {
		r.scriptSrc = DefaultScriptSrc
	}
	if r.ids == nil {
		r.ids = NewTokenSource(opts.IDPrefix, opts.IDLength)
	}
	return r
}

// scriptClose matches a premature script-element terminator inside the
// configuration text.
var scriptClose = regexp.MustCompile(`(?i)</script`)

// escapeScriptClose neutralizes "</script" sequences so the emitted script
// block cannot be closed early by the configuration text. Everything else
// passes through untouched; "<\/" and "</" are equivalent inside JS string
// literals, the only place the sequence can legitimately occur in a config.
func escapeScriptClose(content string) string {
	return scriptClose.ReplaceAllStringFunc(content, func(m string) string {
		return `<\/` + m[2:]
	})
}

// Render produces the HTML fragment for one chart: a container element with
// a freshly generated id, followed by a script that looks the container up
// and runs `new <Global>(el, <content>).render()` at page load.
//
// The content is not validated; malformed configuration surfaces in the
// browser console at page-view time, not here.
func (r *Renderer) Render(content string) string {
	id := r.ids.NewID()

	var b strings.Builder
	b.Grow(len(content) + 256)
	b.WriteString("<")
	b.WriteString(r.element)
	b.WriteString(` id="`)
	b.WriteString(id)
	b.WriteString(`"`)
	if r.class != "" {
		b.WriteString(` class="`)
		b.WriteString(r.class)
		b.WriteString(`"`)
	}
	b.WriteString("></")
	b.WriteString(r.element)
	b.WriteString(">\n<script>\n(function () {\n")
	b.WriteString(`  var el = document.getElementById("`)
	b.WriteString(id)
	b.WriteString("\");\n  var chart = new ")
	b.WriteString(r.global)
	b.WriteString("(el, ")
	b.WriteString(escapeScriptClose(content))
	b.WriteString(");\n  chart.render();\n})();\n</script>")
	return b.String()
}

// ScriptInclude returns the script tag that loads the charting library
// itself. Hosts typically gate this on a per-page flag so pages without
// charts skip the dependency.
func (r *Renderer) ScriptInclude() string {
	return `<script src="` + r.scriptSrc + `"></script>`
}
