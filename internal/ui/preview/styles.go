package preview

import "github.com/charmbracelet/lipgloss"

// Styles controls how the preview paints regions and overlays.
type Styles struct {
	Box       lipgloss.Style
	Partial   lipgloss.Style
	Container lipgloss.Style
	Region    lipgloss.Style
	Status    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Box:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Partial:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Container: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Region:    lipgloss.NewStyle().Background(lipgloss.Color("3")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
}
