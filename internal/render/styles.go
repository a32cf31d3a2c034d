package render

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	muted  = lipgloss.AdaptiveColor{Light: "#d6dae0", Dark: "#2a3850"}
)

// styles holds the lipgloss styles used by the bordered layout.
type styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// stylesFor builds styles on r so color output follows r's writer.
func stylesFor(r *lipgloss.Renderer) styles {
	return styles{
		Header: r.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		Label:  r.NewStyle().Bold(true).Padding(0, 1),
		Cell:   r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		Border: r.NewStyle().Foreground(muted),
	}
}
