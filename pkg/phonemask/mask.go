package phonemask

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultPattern is the Ukrainian ten-digit display format.
const DefaultPattern = "(DDD) DDD-DD-DD"

// DigitSlot marks a digit position inside a pattern.
const DigitSlot = 'D'

var (
	// ErrEmptyPattern is returned when parsing a blank pattern.
	ErrEmptyPattern = errors.New("phonemask: empty pattern")
	// ErrNoDigitSlots is returned when a pattern holds only literal text.
	ErrNoDigitSlots = errors.New("phonemask: pattern has no digit slots")
)

// Segment is one digit group of a mask together with the literal text that
// precedes it.
type Segment struct {
	Prefix string
	Digits int
}

// Mask is a parsed display pattern. The zero value behaves like the default
// mask.
type Mask struct {
	pattern  string
	segments []Segment
	suffix   string
	capacity int
}

var defaultMask = MustParsePattern(DefaultPattern)

// Default returns the mask for DefaultPattern.
func Default() Mask {
	return defaultMask
}

// ParsePattern parses a pattern where every 'D' is a digit slot and every
// other character is literal text. Literal text after the last digit slot is
// kept for reference but never emitted by Format.
func ParsePattern(pattern string) (Mask, error) {
	if strings.TrimSpace(pattern) == "" {
		return Mask{}, ErrEmptyPattern
	}

	mask := Mask{pattern: pattern}
	var literal strings.Builder
	open := false
	for _, r := range pattern {
		if r != DigitSlot {
			literal.WriteRune(r)
			open = false
			continue
		}
		if open {
			mask.segments[len(mask.segments)-1].Digits++
		} else {
			mask.segments = append(mask.segments, Segment{Prefix: literal.String(), Digits: 1})
			literal.Reset()
			open = true
		}
		mask.capacity++
	}
	if mask.capacity == 0 {
		return Mask{}, ErrNoDigitSlots
	}
	mask.suffix = literal.String()
	return mask, nil
}

// MustParsePattern is like ParsePattern but panics on error.
func MustParsePattern(pattern string) Mask {
	mask, err := ParsePattern(pattern)
	if err != nil {
		panic(err)
	}
	return mask
}

func (m Mask) resolved() Mask {
	if m.capacity == 0 {
		return defaultMask
	}
	return m
}

// Pattern returns the source pattern.
func (m Mask) Pattern() string {
	return m.resolved().pattern
}

// Capacity is the maximum number of digits the mask holds.
func (m Mask) Capacity() int {
	return m.resolved().capacity
}

// Segments returns a copy of the parsed digit groups.
func (m Mask) Segments() []Segment {
	return append([]Segment(nil), m.resolved().segments...)
}

// Digits extracts the user digits from text, at most the mask capacity.
// Text is read position by position against the segments: where a segment
// starts and text carries its prefix, the prefix is skipped, so digits that
// belong to pattern literals (a "+38 " country code) are not read back as
// input. Any other non-digit is dropped.
func (m Mask) Digits(text string) string {
	m = m.resolved()
	out := make([]byte, 0, m.capacity)
	seg, filled, checked := 0, 0, false
	for i := 0; i < len(text) && len(out) < m.capacity; {
		if filled == 0 && !checked {
			checked = true
			if prefix := m.segments[seg].Prefix; prefix != "" && strings.HasPrefix(text[i:], prefix) {
				i += len(prefix)
				continue
			}
		}
		c := text[i]
		i++
		if !isDigit(c) {
			continue
		}
		out = append(out, c)
		filled++
		if filled == m.segments[seg].Digits {
			seg, filled, checked = seg+1, 0, false
		}
	}
	return string(out)
}

// Format rewrites text into the display mask.
func (m Mask) Format(text string) string {
	m = m.resolved()
	rest := m.Digits(text)
	if rest == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(m.pattern))
	for _, seg := range m.segments {
		if rest == "" {
			break
		}
		n := min(seg.Digits, len(rest))
		b.WriteString(seg.Prefix)
		b.WriteString(rest[:n])
		rest = rest[n:]
	}
	return b.String()
}

// Complete reports whether text carries enough digits to fill every slot.
func (m Mask) Complete(text string) bool {
	return len(m.Digits(text)) >= m.Capacity()
}

// Placeholder renders the pattern with digit slots shown as X, e.g.
// "(XXX) XXX-XX-XX".
func (m Mask) Placeholder() string {
	return strings.ReplaceAll(m.Pattern(), string(DigitSlot), "X")
}

// Digits strips every character that is not an ASCII digit.
func Digits(text string) string {
	if text == "" {
		return ""
	}
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if isDigit(text[i]) {
			out = append(out, text[i])
		}
	}
	return string(out)
}

// Format rewrites text into DefaultPattern.
func Format(text string) string {
	return defaultMask.Format(text)
}

// TrimSeparator drops the final character of value when it is not a digit.
// Only the last character is inspected.
func TrimSeparator(value string) (string, bool) {
	if value == "" {
		return value, false
	}
	last, size := utf8.DecodeLastRuneInString(value)
	if last < utf8.RuneSelf && isDigit(byte(last)) {
		return value, false
	}
	return value[:len(value)-size], true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
