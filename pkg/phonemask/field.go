package phonemask

import "unicode/utf8"

// KeyBackspace is the key name that triggers the separator aid.
const KeyBackspace = "Backspace"

// Field holds the display value of a single phone input. It is not safe for
// concurrent use. The zero value is an empty field using the default mask.
type Field struct {
	mask  Mask
	value string
}

// NewField returns an empty field formatting with mask.
func NewField(mask Mask) *Field {
	return &Field{mask: mask}
}

// Mask returns the mask applied on input.
func (f *Field) Mask() Mask {
	if f == nil {
		return defaultMask
	}
	return f.mask.resolved()
}

// Value returns the current display value.
func (f *Field) Value() string {
	if f == nil {
		return ""
	}
	return f.value
}

// Digits returns the digit buffer derived from the display value.
func (f *Field) Digits() string {
	return f.Mask().Digits(f.Value())
}

// Complete reports whether every digit slot is filled.
func (f *Field) Complete() bool {
	return f.Mask().Complete(f.Value())
}

// Set replaces the value without reformatting, like assigning the element
// value from script before any input event fires.
func (f *Field) Set(value string) {
	if f == nil {
		return
	}
	f.value = value
}

// Input handles an input event: text is the raw element value after the
// edit. The stored value becomes its formatted projection.
func (f *Field) Input(text string) string {
	if f == nil {
		return ""
	}
	f.value = f.mask.Format(text)
	return f.value
}

// KeyDown handles a keydown event. For Backspace a trailing non-digit is
// removed; every other key leaves the value untouched. It reports whether
// the value changed.
func (f *Field) KeyDown(key string) bool {
	if f == nil || key != KeyBackspace {
		return false
	}
	trimmed, ok := TrimSeparator(f.value)
	if ok {
		f.value = trimmed
	}
	return ok
}

// Backspace runs the full sequence a browser performs for one Backspace
// press at the end of the value: the keydown aid, the default removal of
// one character, then the input reformat.
func (f *Field) Backspace() string {
	if f == nil {
		return ""
	}
	f.KeyDown(KeyBackspace)
	if f.value == "" {
		return ""
	}
	_, size := utf8.DecodeLastRuneInString(f.value)
	return f.Input(f.value[:len(f.value)-size])
}

// Type appends text at the end of the value and reformats, the way typing
// or pasting at the end of the input behaves.
func (f *Field) Type(text string) string {
	if f == nil {
		return ""
	}
	return f.Input(f.value + text)
}
