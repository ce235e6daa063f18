package live

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

func signupForm() model.Form {
	return model.Form{
		Title: "Sign up",
		Fields: []model.Field{
			{Name: "phone", Label: "Phone", Format: model.FormatPhone, Required: true},
			{
				Name:  "experience",
				Label: "Experience",
				Type:  model.FieldTypeChoice,
				Options: []model.Option{
					{Value: "beginner", Label: "Starting from scratch"},
					{Value: "learner", Label: "Know basic concepts"},
					{Value: "builder", Label: "Made small projects"},
				},
			},
		},
	}
}

func newModel(t *testing.T, opts render.RenderOptions) *Model {
	t.Helper()
	m, err := NewModel(signupForm(), opts, nil)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func send(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typed(text string) []tea.KeyMsg {
	var out []tea.KeyMsg
	for _, r := range text {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestModel_TypingFormatsPhone(t *testing.T) {
	m := newModel(t, render.RenderOptions{})

	steps := []struct {
		input string
		want  string
	}{
		{input: "0", want: "(0"},
		{input: "99", want: "(099"},
		{input: "1", want: "(099) 1"},
		{input: "x-", want: "(099) 1"},
		{input: "234567", want: "(099) 123-45-67"},
		{input: "8", want: "(099) 123-45-67"},
	}
	for _, step := range steps {
		send(m, typed(step.input)...)
		if got := m.Values()["phone"]; got != step.want {
			t.Fatalf("after typing %q: expected %q, got %q", step.input, step.want, got)
		}
	}
}

func TestModel_BackspaceUsesSeparatorAid(t *testing.T) {
	m := newModel(t, render.RenderOptions{Values: map[string]string{"phone": "1234"}})
	if got := m.Values()["phone"]; got != "(123) 4" {
		t.Fatalf("expected prefilled value, got %q", got)
	}

	send(m, key(tea.KeyBackspace))
	if got := m.Values()["phone"]; got != "(123" {
		t.Fatalf("expected %q, got %q", "(123", got)
	}
	send(m, key(tea.KeyBackspace))
	if got := m.Values()["phone"]; got != "(12" {
		t.Fatalf("expected %q, got %q", "(12", got)
	}
}

func TestModel_OptionGroupKeepsSingleSelection(t *testing.T) {
	m := newModel(t, render.RenderOptions{})
	send(m, key(tea.KeyTab))
	if m.Focus() != 1 {
		t.Fatalf("expected focus on option group, got %d", m.Focus())
	}

	send(m, key(tea.KeySpace))
	if got := m.Values()["experience"]; got != "beginner" {
		t.Fatalf("expected beginner, got %q", got)
	}

	send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))
	if got := m.Values()["experience"]; got != "builder" {
		t.Fatalf("expected builder, got %q", got)
	}

	send(m, key(tea.KeyDown), key(tea.KeyUp), typed(" ")[0])
	if got := m.Values()["experience"]; got != "learner" {
		t.Fatalf("expected learner, got %q", got)
	}

	view := m.View()
	if strings.Count(view, "(•)") != 1 {
		t.Fatalf("expected exactly one selected marker in view:\n%s", view)
	}
}

func TestModel_SubmitValidates(t *testing.T) {
	m := newModel(t, render.RenderOptions{})

	send(m, typed("0991")...)
	if cmd := send(m, key(tea.KeyCtrlS)); cmd != nil {
		t.Fatalf("expected submit to be refused")
	}
	if m.Submitted() {
		t.Fatalf("expected incomplete phone to block submit")
	}
	if len(m.Errors()["phone"]) == 0 {
		t.Fatalf("expected phone error, got %v", m.Errors())
	}
	if !strings.Contains(m.View(), "(XXX) XXX-XX-XX") {
		t.Fatalf("expected error in view")
	}

	send(m, typed("234567")...)
	if len(m.Errors()["phone"]) != 0 {
		t.Fatalf("expected editing to clear the error")
	}
	send(m, key(tea.KeyTab), key(tea.KeyEnter))
	if cmd := send(m, key(tea.KeyCtrlS)); cmd == nil {
		t.Fatalf("expected quit command after submit")
	}
	if !m.Submitted() {
		t.Fatalf("expected submitted model")
	}

	want := map[string]string{"phone": "(099) 123-45-67", "experience": "beginner"}
	if diff := cmp.Diff(want, m.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_EscAborts(t *testing.T) {
	m := newModel(t, render.RenderOptions{})
	if cmd := send(m, key(tea.KeyEsc)); cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !m.Aborted() || m.Submitted() {
		t.Fatalf("expected aborted model")
	}
}

func TestModel_ViewShowsPlaceholderAndServerErrors(t *testing.T) {
	m := newModel(t, render.RenderOptions{
		Values: map[string]string{"experience": "learner"},
		Errors: map[string][]string{"experience": {"Select a valid choice."}},
	})
	view := m.View()
	for _, want := range []string{"Sign up", "(XXX) XXX-XX-XX", "Know basic concepts", "Select a valid choice."} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestNewModel_RejectsBadPattern(t *testing.T) {
	form := model.Form{Fields: []model.Field{{Name: "phone", Pattern: "none"}}}
	if _, err := NewModel(form, render.RenderOptions{}, nil); err == nil {
		t.Fatalf("expected pattern error")
	}
}

func TestModel_TypingWithCountryCodePattern(t *testing.T) {
	form := signupForm()
	form.Fields[0].Pattern = "+38 DDD DDD DD DD"
	m, err := NewModel(form, render.RenderOptions{}, nil)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}

	send(m, typed("0991")...)
	if got := m.Values()["phone"]; got != "+38 099 1" {
		t.Fatalf("expected %q, got %q", "+38 099 1", got)
	}
	send(m, key(tea.KeyBackspace))
	if got := m.Values()["phone"]; got != "+38 099" {
		t.Fatalf("expected %q after backspace, got %q", "+38 099", got)
	}
}
