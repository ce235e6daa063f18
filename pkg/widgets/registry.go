package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/phonemask"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetPhoneMask   = "phone-mask"
	WidgetOptionGroup = "option-group"
	WidgetCheckbox    = "checkbox"
	WidgetText        = "text"
)

// Matcher decides whether a widget renderer should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widget renderers for fields based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence. Callers should avoid duplicate names; the
// latest registration wins during resolution.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit Widget value or
// UI hint is honoured before matcher evaluation.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate resolves a widget for every field in the form and records it on
// Field.Widget when the field does not already name one.
func (r *Registry) Decorate(form *model.Form) error {
	if r == nil || form == nil {
		return nil
	}
	decorated := make([]model.Field, len(form.Fields))
	for idx, field := range form.Fields {
		if widget, ok := r.Resolve(field); ok && field.Widget == "" {
			field.Widget = widget
		}
		decorated[idx] = field
	}
	form.Fields = decorated
	return nil
}

func explicitWidget(field model.Field) string {
	if widget := strings.TrimSpace(field.Widget); widget != "" {
		return widget
	}
	if field.UIHints != nil {
		if widget := strings.TrimSpace(field.UIHints["widget"]); widget != "" {
			return widget
		}
	}
	return ""
}

// IsPhoneField reports whether field collects a phone number.
func IsPhoneField(field model.Field) bool {
	if strings.TrimSpace(field.Pattern) != "" {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(field.Format)) {
	case model.FormatPhone, "phone":
		return true
	}
	return false
}

// PhoneMask returns the mask for a phone field: its own Pattern when set,
// the default mask otherwise.
func PhoneMask(field model.Field) (phonemask.Mask, error) {
	if strings.TrimSpace(field.Pattern) == "" {
		return phonemask.Default(), nil
	}
	return phonemask.ParsePattern(field.Pattern)
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetPhoneMask, 90, func(field model.Field) bool {
		if field.Type != "" && field.Type != model.FieldTypeString {
			return false
		}
		return IsPhoneField(field)
	})

	r.Register(WidgetOptionGroup, 80, func(field model.Field) bool {
		return field.Type == model.FieldTypeChoice || len(field.Options) > 0
	})

	r.Register(WidgetCheckbox, 70, func(field model.Field) bool {
		return field.Type == model.FieldTypeBoolean
	})

	r.Register(WidgetText, 10, func(field model.Field) bool {
		return field.Type == "" || field.Type == model.FieldTypeString
	})
}
