package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form.
type RenderOptions struct {
	// Values pre-populates controls keyed by field name. Phone values are
	// passed through the field mask before rendering.
	Values map[string]string
	// Errors surfaces server-side validation feedback keyed by field name.
	Errors map[string][]string
	// Hidden carries extra hidden inputs such as CSRF tokens.
	Hidden map[string]string
}
