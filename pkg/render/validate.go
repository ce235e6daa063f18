package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/phonemask"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Messages used by ValidateSubmission.
const (
	MessageRequired      = "This field is required."
	MessageInvalidChoice = "Select a valid choice."
)

// ErrorMapping splits validation feedback into field-level and form-level
// messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// Empty reports whether no message was collected.
func (m ErrorMapping) Empty() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// ValidateSubmission checks submitted values against the form. Phone values
// are normalised through the field mask before validation and the cleaned
// values are returned alongside any errors. Unknown keys become form-level
// errors so nothing is silently accepted.
func ValidateSubmission(form model.Form, values map[string]string) (map[string]string, ErrorMapping) {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	cleaned := make(map[string]string, len(values))

	for _, field := range form.Fields {
		raw := strings.TrimSpace(values[field.Name])

		if widgets.IsPhoneField(field) {
			mask, err := widgets.PhoneMask(field)
			if err != nil {
				mapping.Form = append(mapping.Form, err.Error())
				continue
			}
			raw = mask.Format(raw)
			if raw != "" {
				if err := validatePhone(mask, raw); err != nil {
					mapping.Fields[field.Name] = append(mapping.Fields[field.Name], err.Error())
					continue
				}
			}
		}

		if raw == "" {
			if field.Required {
				mapping.Fields[field.Name] = append(mapping.Fields[field.Name], MessageRequired)
			}
			continue
		}

		if len(field.Options) > 0 && !containsValue(field.OptionValues(), raw) {
			mapping.Fields[field.Name] = append(mapping.Fields[field.Name], MessageInvalidChoice)
			continue
		}
		cleaned[field.Name] = raw
	}

	for key := range values {
		if _, ok := form.Field(key); !ok {
			mapping.Form = append(mapping.Form, "unexpected field "+key)
		}
	}
	sort.Strings(mapping.Form)

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	return cleaned, mapping
}

func validatePhone(mask phonemask.Mask, value string) error {
	if mask.Pattern() == phonemask.DefaultPattern {
		return phonemask.Validate(value)
	}
	return mask.Validate(value)
}

func containsValue(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
