package phonemask

import "testing"

func TestField_TypingBuildsMask(t *testing.T) {
	var f Field
	steps := []struct {
		key  string
		want string
	}{
		{"0", "(0"},
		{"9", "(09"},
		{"9", "(099"},
		{"1", "(099) 1"},
		{"2", "(099) 12"},
		{"3", "(099) 123"},
		{"4", "(099) 123-4"},
		{"5", "(099) 123-45"},
		{"6", "(099) 123-45-6"},
		{"7", "(099) 123-45-67"},
		{"8", "(099) 123-45-67"},
	}
	for i, step := range steps {
		if got := f.Type(step.key); got != step.want {
			t.Fatalf("step %d: typed %q, got %q want %q", i, step.key, got, step.want)
		}
	}
	if !f.Complete() {
		t.Fatalf("expected field to be complete")
	}
	if f.Digits() != "0991234567" {
		t.Fatalf("unexpected digits %q", f.Digits())
	}
}

func TestField_KeyDownRemovesOnlyTrailingSeparator(t *testing.T) {
	f := NewField(Default())

	f.Set("(123) 4")
	if f.KeyDown(KeyBackspace) {
		t.Fatalf("expected no change when last character is a digit")
	}
	if f.Value() != "(123) 4" {
		t.Fatalf("unexpected value %q", f.Value())
	}

	f.Set("(123) ")
	if !f.KeyDown(KeyBackspace) {
		t.Fatalf("expected trailing separator removal")
	}
	if f.Value() != "(123)" {
		t.Fatalf("expected %q, got %q", "(123)", f.Value())
	}

	if f.KeyDown("Delete") {
		t.Fatalf("expected other keys to be ignored")
	}
}

func TestField_BackspaceSequence(t *testing.T) {
	f := NewField(Default())
	f.Input("(123) 4")

	if got := f.Backspace(); got != "(123" {
		t.Fatalf("expected %q, got %q", "(123", got)
	}
	if got := f.Backspace(); got != "(12" {
		t.Fatalf("expected %q, got %q", "(12", got)
	}

	f.Set("(123) ")
	if got := f.Backspace(); got != "(123" {
		t.Fatalf("expected separator aid then reformat to %q, got %q", "(123", got)
	}

	f.Input("1")
	if got := f.Backspace(); got != "" {
		t.Fatalf("expected empty field, got %q", got)
	}
	if got := f.Backspace(); got != "" {
		t.Fatalf("expected backspace on empty field to stay empty, got %q", got)
	}
}

func TestField_MidValueEditReformatsWhole(t *testing.T) {
	f := NewField(Default())
	f.Input("(099) 123-45")
	if got := f.Input("(09x9) 123-45"); got != "(099) 123-45" {
		t.Fatalf("unexpected value %q", got)
	}
	if got := f.Input("(0919) 123-45"); got != "(091) 912-34-5" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestField_NilSafe(t *testing.T) {
	var f *Field
	if f.Value() != "" || f.Input("1") != "" || f.KeyDown(KeyBackspace) || f.Backspace() != "" {
		t.Fatalf("expected nil field to be inert")
	}
}

func TestField_TypingWithCountryCodePattern(t *testing.T) {
	f := NewField(MustParsePattern("+38 DDD DDD DD DD"))
	steps := []struct {
		key  string
		want string
	}{
		{"0", "+38 0"},
		{"9", "+38 09"},
		{"9", "+38 099"},
		{"1", "+38 099 1"},
	}
	for i, step := range steps {
		if got := f.Type(step.key); got != step.want {
			t.Fatalf("step %d: typed %q, got %q want %q", i, step.key, got, step.want)
		}
	}
	if got := f.Backspace(); got != "+38 099" {
		t.Fatalf("expected backspace to drop the last digit, got %q", got)
	}
	if f.Digits() != "099" {
		t.Fatalf("unexpected digits %q", f.Digits())
	}
}
