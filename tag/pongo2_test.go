package tag

import (
	"regexp"
	"strings"
	"testing"

	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/avercin/chartembed/chart"
)

type fixedIDs struct {
	id string
}

func (f fixedIDs) NewID() string { return f.id }

var anchorID = regexp.MustCompile(`id="(chart-[a-z0-9]{8})"`)

func TestRegisterPongo2_Idempotent(t *testing.T) {
	if err := RegisterPongo2(); err != nil {
		t.Fatalf("RegisterPongo2 failed: %v", err)
	}
	if err := RegisterPongo2(); err != nil {
		t.Errorf("second RegisterPongo2 returned error: %v", err)
	}
}

func TestChartTag_RendersFragment(t *testing.T) {
	if err := RegisterPongo2(); err != nil {
		t.Fatalf("RegisterPongo2 failed: %v", err)
	}
	tpl, err := pongo2.FromString(`{% chart %}{"a":1}{% endchart %}`)
	if err != nil {
		t.Fatalf("template parse failed: %v", err)
	}
	out, err := tpl.Execute(pongo2.Context{})
	if err != nil {
		t.Fatalf("template execute failed: %v", err)
	}
	if !strings.Contains(out, `(el, {"a":1})`) {
		t.Errorf("config not passed through: %q", out)
	}
	m := anchorID.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("no anchor id in output: %q", out)
	}
	if !strings.Contains(out, `document.getElementById("`+m[1]+`")`) {
		t.Errorf("script does not reference container id %q: %q", m[1], out)
	}
}

func TestChartTag_BodyIsTemplated(t *testing.T) {
	if err := RegisterPongo2(); err != nil {
		t.Fatalf("RegisterPongo2 failed: %v", err)
	}
	tpl, err := pongo2.FromString(`{% chart %}{"title": "{{ title }}"}{% endchart %}`)
	if err != nil {
		t.Fatalf("template parse failed: %v", err)
	}
	out, err := tpl.Execute(pongo2.Context{"title": "Traffic"})
	if err != nil {
		t.Fatalf("template execute failed: %v", err)
	}
	if !strings.Contains(out, `{"title": "Traffic"}`) {
		t.Errorf("block body not templated before embedding: %q", out)
	}
}

func TestChartTag_SurroundingMarkupPreserved(t *testing.T) {
	if err := RegisterPongo2(); err != nil {
		t.Fatalf("RegisterPongo2 failed: %v", err)
	}
	tpl, err := pongo2.FromString("<p>before</p>{% chart %}{}{% endchart %}<p>after</p>")
	if err != nil {
		t.Fatalf("template parse failed: %v", err)
	}
	out, err := tpl.Execute(pongo2.Context{})
	if err != nil {
		t.Fatalf("template execute failed: %v", err)
	}
	if !strings.HasPrefix(out, "<p>before</p><div ") {
		t.Errorf("fragment not spliced in place: %q", out)
	}
	if !strings.HasSuffix(out, "</script><p>after</p>") {
		t.Errorf("trailing markup lost: %q", out)
	}
}

func TestChartTag_ArgumentsRejected(t *testing.T) {
	if err := RegisterPongo2(); err != nil {
		t.Fatalf("RegisterPongo2 failed: %v", err)
	}
	if _, err := pongo2.FromString(`{% chart bogus %}{}{% endchart %}`); err == nil {
		t.Error("expected parse error for chart tag with arguments")
	}
}

func TestUse_SwapsRenderer(t *testing.T) {
	if err := RegisterPongo2(); err != nil {
		t.Fatalf("RegisterPongo2 failed: %v", err)
	}
	orig := current()
	defer Use(orig)

	Use(chart.New(chart.Options{Global: "Chartist.Bar", IDs: fixedIDs{id: "chart-swapped1"}}))
	tpl, err := pongo2.FromString(`{% chart %}{}{% endchart %}`)
	if err != nil {
		t.Fatalf("template parse failed: %v", err)
	}
	out, err := tpl.Execute(pongo2.Context{})
	if err != nil {
		t.Fatalf("template execute failed: %v", err)
	}
	if !strings.Contains(out, "new Chartist.Bar(el, {})") {
		t.Errorf("swapped renderer not used: %q", out)
	}
	if !strings.Contains(out, `id="chart-swapped1"`) {
		t.Errorf("swapped id source not used: %q", out)
	}

	// nil is a no-op
	Use(nil)
	if current() == nil {
		t.Error("Use(nil) cleared the renderer")
	}
}
