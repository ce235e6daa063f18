package template_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()
	files := fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
		"phone.tpl":      {Data: []byte(`<input value="{{ value|phonemask }}">`)},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var buf strings.Builder
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if buf.String() != result {
		t.Fatalf("writer mismatch: %q", buf.String())
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_PhoneMaskFilter(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("phone.tpl", map[string]any{"value": "0991234567"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != `<input value="(099) 123-45-67">` {
		t.Fatalf("unexpected result %q", result)
	}

	inline, err := engine.Render(`{{ v|phonemask:"DDD-DD" }}`, map[string]any{"v": "12a345"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if inline != "123-45" {
		t.Fatalf("unexpected inline result %q", inline)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("fw_shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("fw_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, err := engine.RenderString("{{ word|fw_shout }}", map[string]any{"word": "hey"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "HEY!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestGoTemplateEngine_RequiresLoader(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error when no base dir or fs is given")
	}
}
