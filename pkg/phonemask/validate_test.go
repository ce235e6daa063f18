package phonemask

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate("(099) 123-45-67"); err != nil {
		t.Fatalf("expected valid number, got %v", err)
	}
	for _, value := range []string{"", "(099) 123-45-6", "0991234567", "(099) 123-45-67 "} {
		err := Validate(value)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Validate(%q): expected ErrInvalidFormat, got %v", value, err)
		}
		var formatErr *FormatError
		if !errors.As(err, &formatErr) || formatErr.Value != value {
			t.Fatalf("Validate(%q): expected FormatError carrying value, got %#v", value, err)
		}
	}
	if got := Validate("1").Error(); got != "phone number must be in the format (XXX) XXX-XX-XX." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestMaskValidate(t *testing.T) {
	mask := MustParsePattern("DDD-DD")
	if err := mask.Validate("123-45"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := mask.Validate("12345"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected unformatted value to fail, got %v", err)
	}
	if err := mask.Validate("123-4"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected incomplete value to fail, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("099 123 45 67")
	if err != nil || got != "(099) 123-45-67" {
		t.Fatalf("unexpected normalize result %q, %v", got, err)
	}
	got, err = Normalize("099")
	if !errors.Is(err, ErrInvalidFormat) || got != "(099" {
		t.Fatalf("expected formatted partial value with error, got %q, %v", got, err)
	}
}
