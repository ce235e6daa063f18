package live

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the live view.
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Focused     lipgloss.Style
	Selected    lipgloss.Style
	Option      lipgloss.Style
	Placeholder lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Label:       lipgloss.NewStyle(),
		Focused:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Option:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
