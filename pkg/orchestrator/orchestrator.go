package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/config"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/vanilla"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSchemaTransformer registers a Transformer that can mutate forms after
// loading but before widgets are resolved.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithWidgetRegistry overrides the registry used to resolve field widgets.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.widgets = registry
	}
}

// WithFormFS resolves Request.Source against fsys instead of the local disk.
func WithFormFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.formFS = fsys
	}
}

// Orchestrator coordinates the pipeline from form definition to rendered
// output. It applies defaults (vanilla renderer, built-in widgets) while
// remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	widgets         *widgets.Registry
	defaultRenderer string
	transformer     Transformer
	formFS          fs.FS
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a form.
type Request struct {
	// Form is used as-is when set.
	Form *model.Form

	// Source is the path of a JSON, YAML or TOML form definition. When both
	// Form and Source are empty the built-in contact form is used.
	Source string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries prefilled values, server-side errors and hidden
	// fields for the renderer.
	RenderOptions render.RenderOptions
}

// Generate resolves the request form and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Resolve returns the transformed, widget-decorated form for req without
// rendering it. Servers use it to validate submissions against the same
// form they render.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (model.Form, error) {
	if ctx == nil {
		return model.Form{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Form{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.Form{}, err
	}

	form, err := o.loadForm(req)
	if err != nil {
		return model.Form{}, err
	}
	if err := o.applyTransformer(ctx, &form); err != nil {
		return model.Form{}, err
	}
	if err := form.Validate(); err != nil {
		return model.Form{}, fmt.Errorf("orchestrator: %w", err)
	}
	if err := o.widgets.Decorate(&form); err != nil {
		return model.Form{}, fmt.Errorf("orchestrator: decorate form: %w", err)
	}
	return form, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) loadForm(req Request) (model.Form, error) {
	if req.Form != nil {
		form := *req.Form
		form.Fields = append([]model.Field(nil), req.Form.Fields...)
		return form, nil
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		return config.DefaultForm(), nil
	}

	var (
		form model.Form
		err  error
	)
	if o.formFS != nil {
		form, err = config.LoadFormFS(o.formFS, source)
	} else {
		form, err = config.LoadForm(source)
	}
	if err != nil {
		return model.Form{}, fmt.Errorf("orchestrator: load form: %w", err)
	}
	return form, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	if name == "" && o.registry.Has(o.defaultRenderer) {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, form *model.Form) error {
	if o.transformer == nil || form == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, form); err != nil {
		return fmt.Errorf("orchestrator: transform form: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.widgets == nil {
		o.widgets = widgets.NewRegistry()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New(vanilla.WithWidgetRegistry(o.widgets))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
