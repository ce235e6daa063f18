// Package formwidgets renders forms built from two interactive widgets: a
// masked phone input and a single-choice option group. The root package
// re-exports the most common entry points; subpackages hold the mask core,
// the selection core, renderers and the HTTP component.
package formwidgets

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/orchestrator"
	"github.com/goliatone/go-formwidgets/pkg/phonemask"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/vanilla"
)

// Form aliases model.Form for callers that only import the root package.
type Form = model.Form

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// FormatPhone reformats text into the (DDD) DDD-DD-DD display mask.
func FormatPhone(text string) string {
	return phonemask.Format(text)
}

// ValidatePhone reports whether value is a complete number in the default
// display mask.
func ValidatePhone(value string) error {
	return phonemask.Validate(value)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the form definition at source (JSON, YAML or TOML) and
// renders it with the named renderer. An empty source renders the built-in
// contact form; an empty rendererName selects vanilla.
func GenerateHTML(ctx context.Context, source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// RenderHTML renders an in-memory form with the default renderer.
func RenderHTML(ctx context.Context, form Form, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Form:          &form,
		RenderOptions: opts,
	})
}

// EmbeddedTemplates exposes the built-in vanilla templates, rooted at the
// templates directory ("form.tmpl", "widgets/phone-mask.tmpl"), so callers
// can copy or override individual widget partials.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(vanilla.TemplatesFS(), "templates")
	if err != nil {
		return vanilla.TemplatesFS()
	}
	return sub
}
