package gridview

import "github.com/charmbracelet/lipgloss"

// Style controls the grid's rendering.
type Style struct {
	Cell      lipgloss.Style
	Merged    lipgloss.Style
	Selection lipgloss.Style
	Editing   lipgloss.Style
	Border    lipgloss.Style

	Header lipgloss.Style
	RowNum lipgloss.Style

	Button       lipgloss.Style
	RowDelete    lipgloss.Style
	Status       lipgloss.Style
	StatusReject lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Cell:         lipgloss.NewStyle(),
		Merged:       lipgloss.NewStyle().Bold(true),
		Selection:    lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("231")),
		Editing:      lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Border:       muted,
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		RowNum:       muted,
		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		RowDelete:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Status:       muted,
		StatusReject: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
