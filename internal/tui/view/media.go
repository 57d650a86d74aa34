package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Placeholder texts shown when a media section has nothing to play.
const (
	VideoLoadingText = "Generating animation..."
	VideoEmptyText   = "Place for videos"
	AudioLoadingText = "Generating audio..."
	AudioEmptyText   = "Place for audio"
)

// MediaItem is one playable element.
type MediaItem struct {
	URL      string
	Status   string // "stopped", "playing", "paused"
	Selected bool
}

// MediaStyles holds the styles used by the media presenters.
type MediaStyles struct {
	Placeholder lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Stopped     lipgloss.Style
	Playing     lipgloss.Style
	Paused      lipgloss.Style
	Error       lipgloss.Style
}

// ResultState is everything the result presenters read.
type ResultState struct {
	IsLoading bool
	Videos    []MediaItem
	Audio     *MediaItem
	Width     int
}

// RenderVideos renders the video section body.
func RenderVideos(state ResultState, styles MediaStyles) string {
	if state.IsLoading {
		return styles.Placeholder.Render(VideoLoadingText)
	}
	if len(state.Videos) == 0 {
		return styles.Placeholder.Render(VideoEmptyText)
	}

	rows := make([]string, 0, len(state.Videos))
	for i, item := range state.Videos {
		rows = append(rows, RenderMediaRow(fmt.Sprintf("video %d", i+1), item, state.Width, styles))
	}
	return strings.Join(rows, "\n")
}

// RenderAudio renders the audio section body.
func RenderAudio(state ResultState, styles MediaStyles) string {
	if state.Audio != nil && state.Audio.URL != "" {
		return RenderMediaRow("audio", *state.Audio, state.Width, styles)
	}
	if state.IsLoading {
		return styles.Placeholder.Render(AudioLoadingText)
	}
	return styles.Placeholder.Render(AudioEmptyText)
}

// RenderError renders the error slot beneath the submission controls.
// An empty message renders nothing.
func RenderError(message string, styles MediaStyles) string {
	if message == "" {
		return ""
	}
	return styles.Error.Render(message)
}

// RenderMediaRow renders a single playable element: a state glyph, its
// label, the URL (truncated to width), and the playback state.
func RenderMediaRow(label string, item MediaItem, width int, styles MediaStyles) string {
	glyph, stateStyle := mediaGlyph(item.Status, styles)
	status := item.Status
	if status == "" {
		status = "stopped"
	}

	prefix := fmt.Sprintf("%s %-8s ", glyph, label)
	suffix := " [" + status + "]"
	url := item.URL
	if width > 0 {
		avail := width - lipgloss.Width(prefix) - lipgloss.Width(suffix)
		if avail < 4 {
			avail = 4
		}
		url = ansi.Truncate(url, avail, "…")
	}

	rowStyle := styles.Item
	if item.Selected {
		rowStyle = styles.Selected
	}
	return rowStyle.Render(prefix+url) + stateStyle.Render(suffix)
}

func mediaGlyph(status string, styles MediaStyles) (string, lipgloss.Style) {
	switch status {
	case "playing":
		return "▶", styles.Playing
	case "paused":
		return "⏸", styles.Paused
	default:
		return "■", styles.Stopped
	}
}
