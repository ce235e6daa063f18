package selection

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNext_ReturnsClicked(t *testing.T) {
	if got := Next("", "a"); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := Next("a", "a"); got != "a" {
		t.Fatalf("expected clicking the selected option to keep it, got %q", got)
	}
	if got := Next("a", "b"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
}

func TestGroup_InitiallyEmpty(t *testing.T) {
	g := NewGroup([]string{"Beginner", "Learner"})
	if _, ok := g.Selected(); ok {
		t.Fatalf("expected no selection")
	}
	if len(g.Marked()) != 0 {
		t.Fatalf("expected no marked options, got %v", g.Marked())
	}
	if g.SelectedIndex() != -1 {
		t.Fatalf("expected -1 index, got %d", g.SelectedIndex())
	}
}

func TestGroup_ExactlyLastClickedIsMarked(t *testing.T) {
	ids := []string{"Beginner", "Learner", "Builder", "Inventor"}
	g := NewGroup(ids)
	clicks := []string{"Learner", "Inventor", "Beginner", "Beginner", "Builder", "Learner"}

	for n, click := range clicks {
		if err := g.Click(click); err != nil {
			t.Fatalf("click %d: %v", n, err)
		}
		if diff := cmp.Diff([]string{click}, g.Marked()); diff != "" {
			t.Fatalf("after click %d (-want +got):\n%s", n, diff)
		}
		for _, id := range ids {
			if g.IsSelected(id) != (id == click) {
				t.Fatalf("after click %d: %q selected=%v", n, id, g.IsSelected(id))
			}
		}
	}
}

func TestGroup_UnknownClickKeepsState(t *testing.T) {
	g := NewGroup([]string{"a", "b"}, WithSelected("b"))
	err := g.Click("zzz")
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if !g.IsSelected("b") {
		t.Fatalf("expected selection unchanged")
	}
	if err := g.ClickIndex(5); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption for bad index, got %v", err)
	}
}

func TestGroup_DedupesAndClassList(t *testing.T) {
	g := NewGroup([]string{"a", " ", "b", "a"}, WithMarker("is-active"))
	if diff := cmp.Diff([]string{"a", "b"}, g.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if err := g.ClickIndex(1); err != nil {
		t.Fatalf("click index: %v", err)
	}
	if diff := cmp.Diff([]string{"experience-option", "is-active"}, g.ClassList("b", "experience-option", "")); diff != "" {
		t.Fatalf("class list mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"experience-option"}, g.ClassList("a", "experience-option")); diff != "" {
		t.Fatalf("class list mismatch (-want +got):\n%s", diff)
	}

	g.Reset()
	if _, ok := g.Selected(); ok {
		t.Fatalf("expected reset to clear selection")
	}
}
