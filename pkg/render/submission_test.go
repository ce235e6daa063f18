package render_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/render"
)

func TestMergeAndSortHiddenFields(t *testing.T) {
	base := map[string]string{
		" existing ": "keep",
		"":           "ignored",
	}

	merged := render.MergeHiddenFields(base,
		render.CSRFToken("csrfmiddlewaretoken", "token123"),
		render.Hidden("step", 2),
		render.Hidden("  ", "skip"),
	)

	wantMerged := map[string]string{
		"existing":            "keep",
		"csrfmiddlewaretoken": "token123",
		"step":                "2",
	}
	if diff := cmp.Diff(wantMerged, merged); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}

	sorted := render.SortedHiddenFields(merged)
	wantSorted := []render.HiddenField{
		{Name: "csrfmiddlewaretoken", Value: "token123"},
		{Name: "existing", Value: "keep"},
		{Name: "step", Value: "2"},
	}
	if diff := cmp.Diff(wantSorted, sorted); diff != "" {
		t.Fatalf("sorted hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestCSRFTokenDefaultsFieldName(t *testing.T) {
	got := render.CSRFToken(" ", "abc")
	if got.Name != render.DefaultCSRFField || got.Value != "abc" {
		t.Fatalf("unexpected hidden field %#v", got)
	}
}

func TestSubmissionValuesDropsHiddenFields(t *testing.T) {
	posted := url.Values{
		"csrf_token": {"abc"},
		"name":       {"Ada", "ignored"},
		"phone":      {"0991234567"},
		"empty":      {},
	}
	want := map[string]string{"name": "Ada", "phone": "0991234567"}
	if diff := cmp.Diff(want, render.SubmissionValues(posted, render.DefaultCSRFField)); diff != "" {
		t.Fatalf("submission values mismatch (-want +got):\n%s", diff)
	}
}
