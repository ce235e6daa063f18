package widgets

import (
	"testing"

	"github.com/goliatone/go-formwidgets/pkg/model"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	field := model.Field{
		Type:   model.FieldTypeString,
		Format: model.FormatPhone,
		UIHints: map[string]string{
			"widget": "custom-phone",
		},
	}

	if got, ok := reg.Resolve(field); !ok || got != "custom-phone" {
		t.Fatalf("expected explicit widget to win, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		field  model.Field
		expect string
	}{
		{
			name:   "tel format",
			field:  model.Field{Type: model.FieldTypeString, Format: "tel"},
			expect: WidgetPhoneMask,
		},
		{
			name:   "pattern without type",
			field:  model.Field{Pattern: "DDD-DD"},
			expect: WidgetPhoneMask,
		},
		{
			name:   "choice options",
			field:  model.Field{Type: model.FieldTypeChoice, Options: []model.Option{{Value: "a"}}},
			expect: WidgetOptionGroup,
		},
		{
			name:   "boolean",
			field:  model.Field{Type: model.FieldTypeBoolean},
			expect: WidgetCheckbox,
		},
		{
			name:   "plain string",
			field:  model.Field{Type: model.FieldTypeString},
			expect: WidgetText,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.Resolve(tc.field)
			if !ok || got != tc.expect {
				t.Fatalf("expected %q, got %q (ok=%v)", tc.expect, got, ok)
			}
		})
	}
}

func TestRegister_PriorityOrdering(t *testing.T) {
	reg := &Registry{}
	reg.Register("low", 1, func(model.Field) bool { return true })
	reg.Register("high", 10, func(model.Field) bool { return true })

	if got, ok := reg.Resolve(model.Field{}); !ok || got != "high" {
		t.Fatalf("expected high priority widget, got %q", got)
	}
}

func TestResolve_EmptyRegistry(t *testing.T) {
	reg := &Registry{}
	if _, ok := reg.Resolve(model.Field{Type: model.FieldTypeString}); ok {
		t.Fatalf("expected empty registry not to resolve")
	}
}

func TestDecorate_RecordsWidget(t *testing.T) {
	reg := NewRegistry()
	form := model.Form{Fields: []model.Field{
		{Name: "phone", Format: "tel"},
		{Name: "experience", Options: []model.Option{{Value: "Beginner"}}},
		{Name: "notes", Widget: "textarea"},
	}}
	if err := reg.Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	want := []string{WidgetPhoneMask, WidgetOptionGroup, "textarea"}
	for i, field := range form.Fields {
		if field.Widget != want[i] {
			t.Fatalf("field %q: expected widget %q, got %q", field.Name, want[i], field.Widget)
		}
	}
}

func TestPhoneMask_UsesFieldPattern(t *testing.T) {
	mask, err := PhoneMask(model.Field{Name: "phone", Format: model.FormatPhone})
	if err != nil {
		t.Fatalf("default mask: %v", err)
	}
	if got := mask.Format("0991234567"); got != "(099) 123-45-67" {
		t.Fatalf("expected default mask, got %q", got)
	}

	mask, err = PhoneMask(model.Field{Name: "phone", Pattern: "DDD DDD"})
	if err != nil {
		t.Fatalf("custom mask: %v", err)
	}
	if got := mask.Format("1234567"); got != "123 456" {
		t.Fatalf("expected custom mask, got %q", got)
	}

	if _, err := PhoneMask(model.Field{Name: "phone", Pattern: "none"}); err == nil {
		t.Fatalf("expected error for pattern without digit slots")
	}
}
