// Package selection tracks a group of mutually exclusive options where at
// most one carries the selected marker.
package selection

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMarker is the class applied to the selected option.
const DefaultMarker = "selected"

// ErrUnknownOption is returned when clicking an id outside the group.
var ErrUnknownOption = errors.New("selection: unknown option")

// Next returns the selection that results from clicking clicked, whatever
// was selected before. Clicking always selects; there is no toggle-off.
func Next(_, clicked string) string {
	return clicked
}

// Group owns the option ids and the current selection. It is not safe for
// concurrent use.
type Group struct {
	ids      []string
	index    map[string]int
	marker   string
	selected string
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithMarker overrides the selected marker class.
func WithMarker(marker string) GroupOption {
	return func(g *Group) {
		if marker = strings.TrimSpace(marker); marker != "" {
			g.marker = marker
		}
	}
}

// WithSelected preselects id when it belongs to the group.
func WithSelected(id string) GroupOption {
	return func(g *Group) {
		if _, ok := g.index[id]; ok {
			g.selected = id
		}
	}
}

// NewGroup builds a group from ids, skipping blanks and duplicates. Nothing
// is selected initially unless WithSelected says otherwise.
func NewGroup(ids []string, opts ...GroupOption) *Group {
	g := &Group{
		index:  make(map[string]int, len(ids)),
		marker: DefaultMarker,
	}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, exists := g.index[id]; exists {
			continue
		}
		g.index[id] = len(g.ids)
		g.ids = append(g.ids, id)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// IDs returns the option ids in order.
func (g *Group) IDs() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.ids...)
}

// Marker returns the class carried by the selected option.
func (g *Group) Marker() string {
	if g == nil || g.marker == "" {
		return DefaultMarker
	}
	return g.marker
}

// Has reports whether id belongs to the group.
func (g *Group) Has(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[id]
	return ok
}

// Click selects id and clears the marker from every other option.
func (g *Group) Click(id string) error {
	if !g.Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, id)
	}
	g.selected = Next(g.selected, id)
	return nil
}

// ClickIndex selects the option at position i.
func (g *Group) ClickIndex(i int) error {
	if g == nil || i < 0 || i >= len(g.ids) {
		return fmt.Errorf("%w: index %d", ErrUnknownOption, i)
	}
	return g.Click(g.ids[i])
}

// Selected returns the selected id, if any.
func (g *Group) Selected() (string, bool) {
	if g == nil || g.selected == "" {
		return "", false
	}
	return g.selected, true
}

// SelectedIndex returns the position of the selected id, or -1.
func (g *Group) SelectedIndex() int {
	if id, ok := g.Selected(); ok {
		return g.index[id]
	}
	return -1
}

// IsSelected reports whether id carries the marker.
func (g *Group) IsSelected(id string) bool {
	selected, ok := g.Selected()
	return ok && selected == id
}

// Marked returns the ids carrying the marker: none or exactly one.
func (g *Group) Marked() []string {
	if selected, ok := g.Selected(); ok {
		return []string{selected}
	}
	return nil
}

// ClassList returns base followed by the marker when id is selected.
func (g *Group) ClassList(id string, base ...string) []string {
	classes := make([]string, 0, len(base)+1)
	for _, class := range base {
		if class = strings.TrimSpace(class); class != "" {
			classes = append(classes, class)
		}
	}
	if g.IsSelected(id) {
		classes = append(classes, g.Marker())
	}
	return classes
}

// Reset clears the selection.
func (g *Group) Reset() {
	if g != nil {
		g.selected = ""
	}
}
