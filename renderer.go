package maildoc

// Renderer substitutes template variables into a template string.
type Renderer interface {
	// Render executes source against data.
	// Returns EINVALID if the template cannot be parsed.
	Render(source string, data map[string]any) (string, error)
}
