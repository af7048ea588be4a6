// Package raymond renders Handlebars templates using
// github.com/aymerick/raymond.
package raymond

import (
	"github.com/aymerick/raymond"
	"github.com/fwojciec/maildoc"
)

// Ensure Renderer implements maildoc.Renderer at compile time.
var _ maildoc.Renderer = (*Renderer)(nil)

// Renderer renders Handlebars templates with a fixed set of helpers.
// Helpers are bound to each parsed template; the raymond global helper
// registry is never touched.
type Renderer struct {
	helpers map[string]any
}

// NewRenderer creates a Renderer with the default helpers (see Helpers).
func NewRenderer() *Renderer {
	return &Renderer{helpers: Helpers()}
}

// NewRendererWithHelpers creates a Renderer with a custom helper set.
func NewRendererWithHelpers(helpers map[string]any) *Renderer {
	return &Renderer{helpers: helpers}
}

// Render executes source against data. An empty source renders as an
// empty string.
func (r *Renderer) Render(source string, data map[string]any) (string, error) {
	if source == "" {
		return "", nil
	}
	if data == nil {
		data = map[string]any{}
	}

	tpl, err := raymond.Parse(source)
	if err != nil {
		return "", maildoc.Errorf(maildoc.EINVALID, "failed to parse template: %v", err)
	}
	if len(r.helpers) > 0 {
		tpl.RegisterHelpers(r.helpers)
	}

	out, err := tpl.Exec(data)
	if err != nil {
		return "", maildoc.Errorf(maildoc.EINVALID, "failed to render template: %v", err)
	}
	return out, nil
}
