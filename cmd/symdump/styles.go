package main

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorError   = lipgloss.Color("196")
	colorDim     = lipgloss.Color("241")
)

type styles struct {
	header     lipgloss.Style
	diagnostic lipgloss.Style
	dim        lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		return styles{
			header:     lipgloss.NewStyle(),
			diagnostic: lipgloss.NewStyle(),
			dim:        lipgloss.NewStyle(),
		}
	}
	return styles{
		header:     lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		diagnostic: lipgloss.NewStyle().Foreground(colorError),
		dim:        lipgloss.NewStyle().Foreground(colorDim),
	}
}
