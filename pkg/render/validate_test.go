package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

func suggestionForm() model.Form {
	return model.Form{
		ID: "signup",
		Fields: []model.Field{
			{Name: "phone", Format: model.FormatPhone, Required: true},
			{Name: "experience", Type: model.FieldTypeChoice, Required: true, Options: []model.Option{
				{Value: "Beginner"}, {Value: "Learner"},
			}},
		},
	}
}

func TestValidateSubmission_NormalisesPhone(t *testing.T) {
	cleaned, mapping := render.ValidateSubmission(suggestionForm(), map[string]string{
		"phone":      "099 123 45 67",
		"experience": "Learner",
	})
	if !mapping.Empty() {
		t.Fatalf("expected no errors, got %#v", mapping)
	}
	want := map[string]string{"phone": "(099) 123-45-67", "experience": "Learner"}
	if diff := cmp.Diff(want, cleaned); diff != "" {
		t.Fatalf("cleaned mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateSubmission_CollectsErrors(t *testing.T) {
	cleaned, mapping := render.ValidateSubmission(suggestionForm(), map[string]string{
		"phone":      "099",
		"experience": "Wizard",
		"extra":      "x",
	})
	if len(cleaned) != 0 {
		t.Fatalf("expected nothing cleaned, got %#v", cleaned)
	}
	wantFields := map[string][]string{
		"phone":      {"phone number must be in the format (XXX) XXX-XX-XX."},
		"experience": {render.MessageInvalidChoice},
	}
	if diff := cmp.Diff(wantFields, mapping.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"unexpected field extra"}, mapping.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateSubmission_Required(t *testing.T) {
	_, mapping := render.ValidateSubmission(suggestionForm(), map[string]string{"phone": "()"})
	wantFields := map[string][]string{
		"phone":      {render.MessageRequired},
		"experience": {render.MessageRequired},
	}
	if diff := cmp.Diff(wantFields, mapping.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateSubmission_CustomPattern(t *testing.T) {
	form := model.Form{Fields: []model.Field{{Name: "code", Pattern: "DDD-DD"}}}
	cleaned, mapping := render.ValidateSubmission(form, map[string]string{"code": "12345"})
	if !mapping.Empty() {
		t.Fatalf("expected no errors, got %#v", mapping)
	}
	if cleaned["code"] != "123-45" {
		t.Fatalf("unexpected cleaned value %q", cleaned["code"])
	}
}
