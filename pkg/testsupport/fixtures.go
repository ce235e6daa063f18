package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/config"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

// SignupForm returns a small form with one field per built-in widget.
func SignupForm() model.Form {
	return model.Form{
		ID:     "signup",
		Title:  "Sign up",
		Action: "/signup",
		Method: "post",
		Fields: []model.Field{
			{Name: "name", Label: "Name", Required: true},
			{Name: "phone", Label: "Phone", Format: model.FormatPhone, Required: true},
			{
				Name:     "experience",
				Label:    "Experience",
				Type:     model.FieldTypeChoice,
				Required: true,
				Options:  append([]model.Option(nil), config.ExperienceOptions...),
			},
			{Name: "newsletter", Label: "Newsletter", Type: model.FieldTypeBoolean},
		},
	}
}

// MustLoadForm reads a form definition fixture.
func MustLoadForm(t *testing.T, path string) model.Form {
	t.Helper()

	form, err := config.LoadForm(path)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return form
}

// WriteFixture writes data under dir and returns the full path.
func WriteFixture(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
