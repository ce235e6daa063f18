package model

import (
	"errors"
	"fmt"
	"strings"
)

// FieldType enumerates the value kinds a field collects.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeChoice  FieldType = "choice"
	FieldTypeBoolean FieldType = "boolean"
)

// FormatPhone marks string fields that hold a phone number.
const FormatPhone = "tel"

var (
	// ErrEmptyFieldName is returned by Form.Validate for unnamed fields.
	ErrEmptyFieldName = errors.New("model: field name is required")
	// ErrDuplicateField is returned by Form.Validate for repeated names.
	ErrDuplicateField = errors.New("model: duplicate field")
)

// Option is one choice of a choice field.
type Option struct {
	Value string `json:"value" yaml:"value" toml:"value"`
	Label string `json:"label" yaml:"label" toml:"label"`
}

// Field describes a single form control.
type Field struct {
	Name        string            `json:"name" yaml:"name" toml:"name"`
	ID          string            `json:"id,omitempty" yaml:"id,omitempty" toml:"id"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty" toml:"label"`
	Type        FieldType         `json:"type,omitempty" yaml:"type,omitempty" toml:"type"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty" toml:"format"`
	Widget      string            `json:"widget,omitempty" yaml:"widget,omitempty" toml:"widget"`
	Pattern     string            `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty" toml:"placeholder"`
	Help        string            `json:"help,omitempty" yaml:"help,omitempty" toml:"help"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty" toml:"required"`
	Default     string            `json:"default,omitempty" yaml:"default,omitempty" toml:"default"`
	Options     []Option          `json:"options,omitempty" yaml:"options,omitempty" toml:"options"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty" toml:"metadata"`
	UIHints     map[string]string `json:"uiHints,omitempty" yaml:"uiHints,omitempty" toml:"uiHints"`
}

// DOMID returns the element id, defaulting to "id_<name>".
func (f Field) DOMID() string {
	if id := strings.TrimSpace(f.ID); id != "" {
		return id
	}
	return "id_" + f.Name
}

// OptionValues returns the option values in order.
func (f Field) OptionValues() []string {
	if len(f.Options) == 0 {
		return nil
	}
	out := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		out = append(out, opt.Value)
	}
	return out
}

// OptionLabels returns option labels, falling back to the value.
func (f Field) OptionLabels() []string {
	if len(f.Options) == 0 {
		return nil
	}
	out := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		label := strings.TrimSpace(opt.Label)
		if label == "" {
			label = opt.Value
		}
		out = append(out, label)
	}
	return out
}

// Form is an ordered set of fields.
type Form struct {
	ID          string  `json:"id" yaml:"id" toml:"id"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty" toml:"title"`
	Action      string  `json:"action,omitempty" yaml:"action,omitempty" toml:"action"`
	Method      string  `json:"method,omitempty" yaml:"method,omitempty" toml:"method"`
	SubmitLabel string  `json:"submitLabel,omitempty" yaml:"submitLabel,omitempty" toml:"submitLabel"`
	Fields      []Field `json:"fields" yaml:"fields" toml:"fields"`
}

// Field looks up a field by name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Validate checks field names are present and unique.
func (f Form) Validate() error {
	seen := make(map[string]struct{}, len(f.Fields))
	for idx, field := range f.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("%w (field %d)", ErrEmptyFieldName, idx)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
