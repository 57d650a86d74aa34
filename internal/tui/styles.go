package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/animath/internal/tui/theme"
	"github.com/javiermolinar/animath/internal/tui/view"
)

// NewStyles builds the page styles from a theme.
func NewStyles(t *theme.Theme) view.PageStyles {
	bg := theme.Color(t.Bg)
	fg := theme.Color(t.Fg)
	muted := theme.Color(t.FgMuted)
	accent := theme.Color(t.Accent)
	highlight := theme.Color(t.BgHighlight)
	selection := theme.Color(t.BgSelection)

	base := lipgloss.NewStyle().Foreground(fg).Background(bg)

	section := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		BorderBackground(bg).
		Background(bg).
		Foreground(fg).
		Padding(0, 1)

	button := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Color(t.Bg)).
		Background(accent).
		Padding(0, 2)

	return view.PageStyles{
		Title:          base.Bold(true).Foreground(accent),
		Tagline:        base.Bold(true),
		Input:          section,
		InputFocused:   section.BorderForeground(accent),
		Button:         button,
		ButtonDisabled: button.Foreground(muted).Background(highlight),
		Preset:         base.Foreground(muted).Background(highlight).Padding(0, 1),
		Section:        section,
		SectionFocused: section.BorderForeground(accent),
		SectionTitle:   base.Bold(true).Foreground(accent),
		Status:         base.Foreground(theme.Color(t.Warning)),
		Help:           base.Foreground(muted),
		Bg:             bg,
		Media: view.MediaStyles{
			Placeholder: base.Foreground(muted).Italic(true),
			Item:        base,
			Selected:    base.Background(selection).Bold(true),
			Stopped:     base.Foreground(muted),
			Playing:     base.Foreground(theme.Color(t.Success)),
			Paused:      base.Foreground(theme.Color(t.Warning)),
			Error:       base.Foreground(theme.Color(t.Error)),
		},
	}
}
