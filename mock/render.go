package mock

import "github.com/fwojciec/maildoc"

// Compile-time interface verification.
var (
	_ maildoc.Renderer  = (*Renderer)(nil)
	_ maildoc.Sanitizer = (*Sanitizer)(nil)
)

// Renderer is a mock implementation of maildoc.Renderer.
type Renderer struct {
	RenderFn func(source string, data map[string]any) (string, error)
}

func (r *Renderer) Render(source string, data map[string]any) (string, error) {
	return r.RenderFn(source, data)
}

// Sanitizer is a mock implementation of maildoc.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (s *Sanitizer) Sanitize(html string) (string, error) {
	return s.SanitizeFn(html)
}
