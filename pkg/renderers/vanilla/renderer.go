package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/render"
	rendertemplate "github.com/goliatone/go-formwidgets/pkg/render/template"
	"github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formwidgets/pkg/selection"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// DefaultRuntimeScript is where the behaviors bundle is expected to be
// mounted when serving RuntimeAssetsFS under /runtime/.
const DefaultRuntimeScript = "/runtime/" + RuntimeScriptName

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	widgets          *widgets.Registry
	themeSelector    theme.ThemeSelector
	themeName        string
	themeVariant     string
	runtimeScript    string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithWidgetRegistry overrides the registry that picks a template per field.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.widgets = registry
		}
	}
}

// WithThemeSelector resolves class tokens from a go-theme selection.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.themeSelector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// WithRuntimeScript sets the script tag URL. An empty value omits the tag.
func WithRuntimeScript(url string) Option {
	return func(cfg *config) {
		cfg.runtimeScript = strings.TrimSpace(url)
	}
}

// Renderer renders forms to HTML bound to the behaviors runtime through
// data-fw-* attributes.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	widgets       *widgets.Registry
	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
	runtimeScript string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:    TemplatesFS(),
		runtimeScript: DefaultRuntimeScript,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.widgets == nil {
		cfg.widgets = widgets.NewRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		widgets:       cfg.widgets,
		themeSelector: cfg.themeSelector,
		themeName:     cfg.themeName,
		themeVariant:  cfg.themeVariant,
		runtimeScript: cfg.runtimeScript,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render renders the form. Fields whose widget has no template fail with an
// error naming the field.
func (r *Renderer) Render(ctx context.Context, form model.Form, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}

	classes, err := resolveThemeClasses(r.themeSelector, r.themeName, r.themeVariant)
	if err != nil {
		return nil, err
	}

	decorated := form
	decorated.Fields = append([]model.Field(nil), form.Fields...)
	if err := r.widgets.Decorate(&decorated); err != nil {
		return nil, fmt.Errorf("vanilla renderer: decorate widgets: %w", err)
	}

	fields := make([]string, 0, len(decorated.Fields))
	for _, field := range decorated.Fields {
		data, err := fieldData(field, options, classes)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: field %q: %w", field.Name, err)
		}
		html, err := r.templates.RenderTemplate("templates/widgets/"+field.Widget, data)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: field %q widget %q: %w", field.Name, field.Widget, err)
		}
		fields = append(fields, strings.TrimRight(html, "\n"))
	}

	hidden := make([]map[string]string, 0, len(options.Hidden))
	for _, h := range render.SortedHiddenFields(options.Hidden) {
		hidden = append(hidden, map[string]string{"name": h.Name, "value": h.Value})
	}

	method := strings.ToLower(strings.TrimSpace(form.Method))
	if method == "" {
		method = "post"
	}
	submit := strings.TrimSpace(form.SubmitLabel)
	if submit == "" {
		submit = "Submit"
	}

	result, err := r.templates.RenderTemplate("templates/form", map[string]any{
		"form": map[string]any{
			"id":     form.ID,
			"title":  form.Title,
			"action": form.Action,
			"method": method,
			"class":  ClassForm,
		},
		"fields":         fields,
		"hidden":         hidden,
		"form_errors":    options.Errors[""],
		"submit_label":   submit,
		"runtime_script": r.runtimeScript,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func fieldData(field model.Field, options render.RenderOptions, classes themeClasses) (map[string]any, error) {
	value, ok := options.Values[field.Name]
	if !ok {
		value = field.Default
	}

	data := map[string]any{
		"id":       field.DOMID(),
		"name":     field.Name,
		"label":    sanitizeLabel(field.Label),
		"help":     field.Help,
		"required": field.Required,
		"errors":   options.Errors[field.Name],
		"value":    value,
		"class":    ClassField,
	}

	switch field.Widget {
	case widgets.WidgetPhoneMask:
		mask, err := widgets.PhoneMask(field)
		if err != nil {
			return nil, err
		}
		placeholder := field.Placeholder
		if placeholder == "" {
			placeholder = mask.Placeholder()
		}
		data["value"] = mask.Format(value)
		data["pattern"] = mask.Pattern()
		data["placeholder"] = placeholder
		data["max_length"] = len(mask.Placeholder())
		data["input_class"] = classes.phoneInput
	case widgets.WidgetOptionGroup:
		group := selection.NewGroup(field.OptionValues(),
			selection.WithMarker(classes.optionSelected),
			selection.WithSelected(value),
		)
		labels := field.OptionLabels()
		opts := make([]map[string]any, 0, len(field.Options))
		for idx, opt := range field.Options {
			opts = append(opts, map[string]any{
				"value":   opt.Value,
				"label":   sanitizeLabel(labels[idx]),
				"classes": strings.Join(group.ClassList(opt.Value, classes.optionItem), " "),
				"checked": group.IsSelected(opt.Value),
			})
		}
		data["options"] = opts
		data["marker"] = group.Marker()
		data["item_class"] = classes.optionItem
		data["input_class"] = classes.optionInput
	case widgets.WidgetCheckbox:
		data["checked"] = value == "true" || value == "on" || value == "1"
	}
	return data, nil
}
