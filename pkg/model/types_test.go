package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestField_DOMIDDefaultsToDjangoStyle(t *testing.T) {
	if got := (Field{Name: "phone"}).DOMID(); got != "id_phone" {
		t.Fatalf("unexpected id %q", got)
	}
	if got := (Field{Name: "phone", ID: "mobile"}).DOMID(); got != "mobile" {
		t.Fatalf("unexpected id %q", got)
	}
}

func TestField_OptionLabelsFallBackToValue(t *testing.T) {
	field := Field{Options: []Option{{Value: "Beginner", Label: "Starting from scratch"}, {Value: "Learner"}}}
	if diff := cmp.Diff([]string{"Starting from scratch", "Learner"}, field.OptionLabels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Beginner", "Learner"}, field.OptionValues()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_Validate(t *testing.T) {
	if err := (Form{Fields: []Field{{Name: "a"}, {Name: "b"}}}).Validate(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
	if err := (Form{Fields: []Field{{Name: "a"}, {Name: "a"}}}).Validate(); !errors.Is(err, ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
	if err := (Form{Fields: []Field{{Name: " "}}}).Validate(); !errors.Is(err, ErrEmptyFieldName) {
		t.Fatalf("expected ErrEmptyFieldName, got %v", err)
	}
}
