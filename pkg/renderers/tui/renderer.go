package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/phonemask"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/selection"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Renderer implements render.Renderer for terminal-driven sessions: each
// field becomes a prompt and the collected answers are serialized.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	widgets           *widgets.Registry
	submitTransformer SubmitTransformer
	theme             Theme
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
		widgets:      widgets.NewRegistry(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

var _ render.Renderer = (*Renderer)(nil)

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every field and returns the serialized answers.
func (r *Renderer) Render(ctx context.Context, form model.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	if err := r.widgets.Decorate(&form); err != nil {
		return nil, err
	}

	state := NewState(opts.Values, opts.Errors)
	if form.Title != "" {
		if err := r.driver.Info(ctx, form.Title); err != nil {
			return nil, err
		}
	}

	for _, field := range form.Fields {
		for _, msg := range state.ErrorsFor(field.Name) {
			_ = r.driver.Info(ctx, r.theme.ErrorPrefix+displayLabel(field)+": "+msg)
		}
		if err := r.promptField(ctx, field, state); err != nil {
			return nil, err
		}
		state.ClearErrors(field.Name)
	}

	answers := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		if v, ok := state.Value(field.Name); ok {
			answers[field.Name] = v
		}
	}
	values, mapping := render.ValidateSubmission(form, answers)
	if !mapping.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSubmission, describeErrors(mapping))
	}

	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	return r.serialize(form, values)
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, state *State) error {
	switch field.Widget {
	case widgets.WidgetPhoneMask:
		return r.promptPhone(ctx, field, state)
	case widgets.WidgetOptionGroup:
		return r.promptOptions(ctx, field, state)
	case widgets.WidgetCheckbox:
		return r.promptBoolean(ctx, field, state)
	default:
		return r.promptString(ctx, field, state)
	}
}

func (r *Renderer) promptPhone(ctx context.Context, field model.Field, state *State) error {
	mask, err := widgets.PhoneMask(field)
	if err != nil {
		return fmt.Errorf("tui: field %q: %w", field.Name, err)
	}

	validate := func(answer string) error {
		formatted := mask.Format(answer)
		if formatted == "" {
			if field.Required {
				return errors.New(render.MessageRequired)
			}
			return nil
		}
		if mask.Pattern() == phonemask.DefaultPattern {
			return phonemask.Validate(formatted)
		}
		return mask.Validate(formatted)
	}

	help := displayHelp(field)
	if help == "" {
		help = "Format: " + mask.Placeholder()
	}

	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message:   displayLabel(field),
			Default:   mask.Format(defaultValue(state, field)),
			Help:      help,
			Validator: validate,
		})
		if err != nil {
			return err
		}
		if err := validate(response); err != nil {
			r.invalid(ctx, field, err)
			continue
		}
		state.Set(field.Name, mask.Format(response))
		return nil
	}
}

func (r *Renderer) promptOptions(ctx context.Context, field model.Field, state *State) error {
	group := selection.NewGroup(field.OptionValues(),
		selection.WithSelected(defaultValue(state, field)),
	)
	labels := field.OptionLabels()

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      displayLabel(field),
			Options:      labels,
			DefaultIndex: group.SelectedIndex(),
			Help:         displayHelp(field),
		})
		if err != nil {
			return err
		}
		if err := group.ClickIndex(idx); err != nil {
			r.invalid(ctx, field, errors.New(render.MessageInvalidChoice))
			continue
		}
		selected, _ := group.Selected()
		state.Set(field.Name, selected)
		return nil
	}
}

func (r *Renderer) promptBoolean(ctx context.Context, field model.Field, state *State) error {
	current, _ := strconv.ParseBool(defaultValue(state, field))

	for {
		resp, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: displayLabel(field),
			Default: current,
			Help:    displayHelp(field),
		})
		if err != nil {
			return err
		}
		if field.Required && !resp {
			r.invalid(ctx, field, errors.New(render.MessageRequired))
			continue
		}
		if resp {
			state.Set(field.Name, "true")
		} else {
			state.Set(field.Name, "")
		}
		return nil
	}
}

func (r *Renderer) promptString(ctx context.Context, field model.Field, state *State) error {
	validate := func(answer string) error {
		if field.Required && strings.TrimSpace(answer) == "" {
			return errors.New(render.MessageRequired)
		}
		return nil
	}

	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message:   displayLabel(field),
			Default:   defaultValue(state, field),
			Help:      displayHelp(field),
			Validator: validate,
		})
		if err != nil {
			return err
		}
		if err := validate(response); err != nil {
			r.invalid(ctx, field, err)
			continue
		}
		state.Set(field.Name, strings.TrimSpace(response))
		return nil
	}
}

func (r *Renderer) invalid(ctx context.Context, field model.Field, err error) {
	_ = r.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %v", r.theme.ErrorPrefix, displayLabel(field), err))
}

func (r *Renderer) serialize(form model.Form, values map[string]string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		for key, value := range values {
			encoded.Set(key, value)
		}
		return []byte(encoded.Encode()), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(form, values)), nil
	default:
		return json.Marshal(values)
	}
}

func prettyPrint(form model.Form, values map[string]string) string {
	var b strings.Builder
	for _, field := range form.Fields {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", field.Name, value)
	}
	return b.String()
}

func describeErrors(mapping render.ErrorMapping) string {
	var parts []string
	for name, msgs := range mapping.Fields {
		parts = append(parts, name+": "+strings.Join(msgs, " "))
	}
	sort.Strings(parts)
	parts = append(parts, mapping.Form...)
	return strings.Join(parts, "; ")
}

func defaultValue(state *State, field model.Field) string {
	if v, ok := state.Value(field.Name); ok {
		return v
	}
	return field.Default
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayHelp(field model.Field) string {
	if h := field.Metadata["cli.help"]; h != "" {
		return h
	}
	return field.Help
}
