package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// ErrAborted is returned when the user leaves the form without submitting.
var ErrAborted = errors.New("live: aborted")

// Option configures the live renderer.
type Option func(*Renderer)

// WithInput reads key events from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(l *Renderer) {
		l.input = r
	}
}

// WithOutput writes the view to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Renderer) {
		l.output = w
	}
}

// WithStyles overrides the view styles.
func WithStyles(styles Styles) Option {
	return func(l *Renderer) {
		l.styles = &styles
	}
}

// WithWidgetRegistry overrides how fields are mapped onto editors.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(l *Renderer) {
		if registry != nil {
			l.widgets = registry
		}
	}
}

// Renderer runs a full-screen bubbletea session for a form and returns the
// submitted values as JSON.
type Renderer struct {
	input   io.Reader
	output  io.Writer
	styles  *Styles
	widgets *widgets.Registry
}

// New constructs a live renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{widgets: widgets.NewRegistry()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

var _ render.Renderer = (*Renderer)(nil)

func (r *Renderer) Name() string { return "live" }

func (r *Renderer) ContentType() string { return "application/json" }

// Render runs the session until the form is submitted or abandoned.
func (r *Renderer) Render(ctx context.Context, form model.Form, opts render.RenderOptions) ([]byte, error) {
	values, err := r.Run(ctx, form, opts)
	if err != nil {
		return nil, err
	}
	return json.Marshal(values)
}

// Run is Render without serialization.
func (r *Renderer) Run(ctx context.Context, form model.Form, opts render.RenderOptions) (map[string]string, error) {
	if ctx == nil {
		return nil, errors.New("live: context is required")
	}
	m, err := NewModel(form, opts, r.widgets)
	if err != nil {
		return nil, err
	}
	if r.styles != nil {
		m.WithStyles(*r.styles)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.input != nil {
		programOpts = append(programOpts, tea.WithInput(r.input))
	}
	if r.output != nil {
		programOpts = append(programOpts, tea.WithOutput(r.output))
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		return nil, fmt.Errorf("live: %w", err)
	}
	if m.Aborted() || !m.Submitted() {
		return nil, ErrAborted
	}
	return m.Values(), nil
}
