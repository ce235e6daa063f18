package live

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/phonemask"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/selection"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

const helpLine = "tab/shift+tab: move  ↑/↓: choose  space/enter: select  ctrl+s: submit  esc: quit"

type item struct {
	field   model.Field
	phone   *phonemask.Field
	group   *selection.Group
	cursor  int
	text    string
	checked bool
}

func (it *item) value() string {
	switch {
	case it.phone != nil:
		return it.phone.Value()
	case it.group != nil:
		selected, _ := it.group.Selected()
		return selected
	case it.field.Widget == widgets.WidgetCheckbox:
		if it.checked {
			return "true"
		}
		return ""
	default:
		return strings.TrimSpace(it.text)
	}
}

// Model is a bubbletea model that edits a form in place. Phone fields run
// every keystroke through their mask; option groups keep exactly one
// selection.
type Model struct {
	title     string
	form      model.Form
	items     []*item
	focus     int
	errors    map[string][]string
	formErrs  []string
	styles    Styles
	submitted bool
	aborted   bool
}

// NewModel builds a model for form, seeded from opts.
func NewModel(form model.Form, opts render.RenderOptions, registry *widgets.Registry) (*Model, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if registry == nil {
		registry = widgets.NewRegistry()
	}
	if err := registry.Decorate(&form); err != nil {
		return nil, err
	}

	m := &Model{
		title:  form.Title,
		form:   form,
		errors: make(map[string][]string, len(opts.Errors)),
		styles: DefaultStyles(),
	}
	for name, msgs := range opts.Errors {
		m.errors[name] = append([]string(nil), msgs...)
	}

	for _, field := range form.Fields {
		current, ok := opts.Values[field.Name]
		if !ok {
			current = field.Default
		}
		it := &item{field: field}
		switch field.Widget {
		case widgets.WidgetPhoneMask:
			mask, err := widgets.PhoneMask(field)
			if err != nil {
				return nil, fmt.Errorf("live: field %q: %w", field.Name, err)
			}
			it.phone = phonemask.NewField(mask)
			it.phone.Input(current)
		case widgets.WidgetOptionGroup:
			it.group = selection.NewGroup(field.OptionValues(), selection.WithSelected(current))
			if idx := it.group.SelectedIndex(); idx >= 0 {
				it.cursor = idx
			}
		case widgets.WidgetCheckbox:
			it.checked = current == "true" || current == "on"
		default:
			it.text = current
		}
		m.items = append(m.items, it)
	}
	return m, nil
}

// WithStyles replaces the view styles.
func (m *Model) WithStyles(styles Styles) *Model {
	m.styles = styles
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyCtrlS:
		return m, m.submit()
	case tea.KeyTab:
		m.move(1)
		return m, nil
	case tea.KeyShiftTab:
		m.move(-1)
		return m, nil
	}

	it := m.current()
	if it == nil {
		return m, nil
	}

	switch key.Type {
	case tea.KeyUp:
		if it.group != nil {
			it.cursor = clamp(it.cursor-1, len(it.group.IDs()))
		} else {
			m.move(-1)
		}
	case tea.KeyDown:
		if it.group != nil {
			it.cursor = clamp(it.cursor+1, len(it.group.IDs()))
		} else {
			m.move(1)
		}
	case tea.KeyEnter:
		if it.group != nil || it.field.Widget == widgets.WidgetCheckbox {
			m.activate(it)
			return m, nil
		}
		if m.focus == len(m.items)-1 {
			return m, m.submit()
		}
		m.move(1)
	case tea.KeyBackspace:
		m.backspace(it)
	case tea.KeySpace:
		m.typeRunes(it, []rune{' '})
	case tea.KeyRunes:
		m.typeRunes(it, key.Runes)
	}
	return m, nil
}

func (m *Model) typeRunes(it *item, runes []rune) {
	if len(runes) == 1 && runes[0] == ' ' && (it.group != nil || it.field.Widget == widgets.WidgetCheckbox) {
		m.activate(it)
		return
	}
	switch {
	case it.phone != nil:
		it.phone.Type(string(runes))
	case it.group != nil, it.field.Widget == widgets.WidgetCheckbox:
	default:
		it.text += string(runes)
	}
	delete(m.errors, it.field.Name)
}

func (m *Model) backspace(it *item) {
	switch {
	case it.phone != nil:
		it.phone.Backspace()
	case it.group != nil, it.field.Widget == widgets.WidgetCheckbox:
		return
	default:
		if r := []rune(it.text); len(r) > 0 {
			it.text = string(r[:len(r)-1])
		}
	}
	delete(m.errors, it.field.Name)
}

func (m *Model) activate(it *item) {
	if it.group != nil {
		_ = it.group.ClickIndex(it.cursor)
	} else {
		it.checked = !it.checked
	}
	delete(m.errors, it.field.Name)
}

func (m *Model) submit() tea.Cmd {
	_, mapping := render.ValidateSubmission(m.form, m.Values())
	if !mapping.Empty() {
		m.errors = mapping.Fields
		if m.errors == nil {
			m.errors = make(map[string][]string)
		}
		m.formErrs = mapping.Form
		for idx, it := range m.items {
			if len(m.errors[it.field.Name]) > 0 {
				m.focus = idx
				break
			}
		}
		return nil
	}
	m.formErrs = nil
	m.submitted = true
	return tea.Quit
}

func (m *Model) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.items)) % len(m.items)
}

func (m *Model) current() *item {
	if m.focus < 0 || m.focus >= len(m.items) {
		return nil
	}
	return m.items[m.focus]
}

// Values returns the non-empty field values keyed by name.
func (m *Model) Values() map[string]string {
	out := make(map[string]string, len(m.items))
	for _, it := range m.items {
		if v := it.value(); v != "" {
			out[it.field.Name] = v
		}
	}
	return out
}

// Errors returns the field errors from the last submit attempt.
func (m *Model) Errors() map[string][]string {
	return m.errors
}

// Focus returns the index of the focused field.
func (m *Model) Focus() int {
	return m.focus
}

// Submitted reports whether the form passed validation and was submitted.
func (m *Model) Submitted() bool {
	return m.submitted
}

// Aborted reports whether the user quit without submitting.
func (m *Model) Aborted() bool {
	return m.aborted
}

func (m *Model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n\n")
	}

	for idx, it := range m.items {
		focused := idx == m.focus
		label := it.field.Label
		if label == "" {
			label = it.field.Name
		}
		if focused {
			b.WriteString(m.styles.Focused.Render("> " + label))
		} else {
			b.WriteString(m.styles.Label.Render("  " + label))
		}
		b.WriteString("\n")

		switch {
		case it.phone != nil:
			b.WriteString("    ")
			if v := it.phone.Value(); v != "" {
				b.WriteString(v)
			} else {
				b.WriteString(m.styles.Placeholder.Render(it.phone.Mask().Placeholder()))
			}
			b.WriteString("\n")
		case it.group != nil:
			labels := it.field.OptionLabels()
			for i, id := range it.group.IDs() {
				cursor := " "
				if focused && i == it.cursor {
					cursor = ">"
				}
				mark, style := "( )", m.styles.Option
				if it.group.IsSelected(id) {
					mark, style = "(•)", m.styles.Selected
				}
				text := id
				if i < len(labels) {
					text = labels[i]
				}
				fmt.Fprintf(&b, "   %s %s\n", cursor, style.Render(mark+" "+text))
			}
		case it.field.Widget == widgets.WidgetCheckbox:
			mark := "[ ]"
			if it.checked {
				mark = "[x]"
			}
			b.WriteString("    " + mark + "\n")
		default:
			b.WriteString("    " + it.text + "\n")
		}

		for _, msg := range m.errors[it.field.Name] {
			b.WriteString("    " + m.styles.Error.Render(msg) + "\n")
		}
	}

	for _, msg := range m.formErrs {
		b.WriteString(m.styles.Error.Render(msg) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(helpLine))
	b.WriteString("\n")
	return b.String()
}

func clamp(v, n int) int {
	if n == 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
