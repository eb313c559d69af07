// Package tag binds the chart renderer to host templating engines.
//
// Hosts own the delimiter syntax; this package just hands the captured
// block text to chart.Renderer and splices the fragment back.
package tag

import (
	"bytes"
	"sync"

	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/avercin/chartembed/chart"
	"github.com/avercin/chartembed/utils"
)

var (
	mu       sync.RWMutex
	renderer = chart.New(chart.Options{})

	registerOnce sync.Once
	registerErr  error
)

// Use swaps the renderer behind the registered bindings. Passing nil is a
// no-op.
func Use(r *chart.Renderer) {
	if r == nil {
		return
	}
	mu.Lock()
	renderer = r
	mu.Unlock()
}

func current() *chart.Renderer {
	mu.RLock()
	defer mu.RUnlock()
	return renderer
}

// RegisterPongo2 registers the {% chart %}...{% endchart %} block tag with
// pongo2's global tag registry. pongo2 rejects duplicate registrations, so
// this is guarded to be safe to call more than once.
func RegisterPongo2() error {
	registerOnce.Do(func() {
		registerErr = pongo2.RegisterTag("chart", chartTagParser)
	})
	return registerErr
}

type chartTagNode struct {
	wrapper *pongo2.NodeWrapper
}

func (node *chartTagNode) Execute(ctx *pongo2.ExecutionContext, writer pongo2.TemplateWriter) *pongo2.Error {
	// Render the block body first so template expressions inside the
	// configuration text resolve before it reaches the fragment.
	var buf bytes.Buffer
	if err := node.wrapper.Execute(ctx, &buf); err != nil {
		return err
	}
	content := buf.String()
	utils.Debug("chart tag: rendering fragment from %d bytes of config", len(content))
	if _, err := writer.WriteString(current().Render(content)); err != nil {
		return ctx.Error(err.Error(), nil)
	}
	return nil
}

func chartTagParser(doc *pongo2.Parser, start *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
	node := &chartTagNode{}

	wrapper, _, err := doc.WrapUntilTag("endchart")
	if err != nil {
		return nil, err
	}
	node.wrapper = wrapper

	if arguments.Count() > 0 {
		return nil, arguments.Error("chart tag takes no arguments", nil)
	}

	return node, nil
}
