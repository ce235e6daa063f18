package render

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// DefaultCSRFField is the hidden input name CSRFToken uses when none is
// given.
const DefaultCSRFField = "csrf_token"

// HiddenField is a hidden input emitted after the visible fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// CSRFToken returns the hidden field carrying token under name, or under
// DefaultCSRFField when name is blank.
func CSRFToken(name, token string) HiddenField {
	if strings.TrimSpace(name) == "" {
		name = DefaultCSRFField
	}
	return Hidden(name, token)
}

// MergeHiddenFields returns a copy of base with fields applied. Blank names
// are dropped; later fields win.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for name, value := range base {
		if name = strings.TrimSpace(name); name != "" {
			out[name] = value
		}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			out[name] = field.Value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields returns fields ordered by name, for stable markup.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	clean := MergeHiddenFields(fields)
	if clean == nil {
		return nil
	}
	out := make([]HiddenField, 0, len(clean))
	for _, name := range slices.Sorted(maps.Keys(clean)) {
		out = append(out, HiddenField{Name: name, Value: clean[name]})
	}
	return out
}

// SubmissionValues flattens posted values to the first value per key and
// drops the hidden field names, leaving what ValidateSubmission checks.
func SubmissionValues(posted url.Values, hidden ...string) map[string]string {
	out := make(map[string]string, len(posted))
	for name, values := range posted {
		if len(values) == 0 || slices.Contains(hidden, name) {
			continue
		}
		out[name] = values[0]
	}
	return out
}
