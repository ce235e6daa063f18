package phonemask

import (
	"errors"
	"regexp"
)

// ErrInvalidFormat matches every FormatError via errors.Is.
var ErrInvalidFormat = errors.New("phonemask: invalid phone number format")

var defaultFormatRegex = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{2}-\d{2}$`)

// FormatError reports a stored value that is not a complete mask projection.
type FormatError struct {
	Value       string
	Placeholder string
}

func (e *FormatError) Error() string {
	return "phone number must be in the format " + e.Placeholder + "."
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// Validate checks that value is a complete number in DefaultPattern, e.g.
// "(099) 123-45-67".
func Validate(value string) error {
	if defaultFormatRegex.MatchString(value) {
		return nil
	}
	return &FormatError{Value: value, Placeholder: defaultMask.Placeholder()}
}

// Validate checks that value is already formatted with m and fills every
// digit slot.
func (m Mask) Validate(value string) error {
	if value != "" && m.Complete(value) && m.Format(value) == value {
		return nil
	}
	return &FormatError{Value: value, Placeholder: m.Placeholder()}
}

// Normalize formats text with the default mask and validates the result.
// The formatted value is returned even when validation fails.
func Normalize(text string) (string, error) {
	formatted := Format(text)
	return formatted, Validate(formatted)
}
