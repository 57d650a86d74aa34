package view

import "github.com/charmbracelet/lipgloss"

// plainStyles returns unstyled styles with the same frame sizes as the TUI's.
func plainStyles() PageStyles {
	plain := lipgloss.NewStyle()
	section := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	return PageStyles{
		Title:          plain,
		Tagline:        plain,
		Input:          section,
		InputFocused:   section,
		Button:         plain,
		ButtonDisabled: plain,
		Preset:         plain,
		Section:        section,
		SectionFocused: section,
		SectionTitle:   plain,
		Status:         plain,
		Help:           plain,
		Bg:             lipgloss.Color(""),
		Media: MediaStyles{
			Placeholder: plain,
			Item:        plain,
			Selected:    plain,
			Stopped:     plain,
			Playing:     plain,
			Paused:      plain,
			Error:       plain,
		},
	}
}
