package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Fixed labels of the page.
const (
	AppTitle        = "AniMath"
	Tagline         = "Just animate math, and explore it like a 3b1b"
	TriggerIdle     = "Generate"
	TriggerLoading  = "Generating..."
	VideosTitle     = "Generated Videos"
	AudioTitle      = "Generated Audio"
	minSectionWidth = 20
	maxContentWidth = 100
)

// PageStyles holds the styles for the page chrome.
type PageStyles struct {
	Title          lipgloss.Style
	Tagline        lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Preset         lipgloss.Style
	Section        lipgloss.Style
	SectionFocused lipgloss.Style
	SectionTitle   lipgloss.Style
	Status         lipgloss.Style
	Help           lipgloss.Style
	Bg             lipgloss.Color
	Media          MediaStyles
}

// PageState contains everything needed to render the generator page.
type PageState struct {
	Width        int
	Height       int
	InputView    string // rendered text input
	InputFocused bool
	IsLoading    bool
	SpinnerFrame string
	Presets      []string
	ErrorMessage string
	Result       ResultState
	MediaFocused bool
	StatusText   string
	HelpText     string
	Styles       PageStyles
}

// ContentWidth returns the width available to page sections.
func ContentWidth(width int) int {
	w := width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < minSectionWidth {
		w = minSectionWidth
	}
	return w
}

// RenderPage composes the full page. It reads nothing but state.
func RenderPage(state PageState) string {
	if state.Width == 0 || state.Height == 0 {
		return "Loading..."
	}

	s := state.Styles
	contentW := ContentWidth(state.Width)

	header := s.Title.Render(AppTitle)
	tagline := s.Tagline.Render(ansi.Truncate(Tagline, contentW, "…"))

	inputStyle := s.Input
	if state.InputFocused {
		inputStyle = s.InputFocused
	}
	input := box(inputStyle, contentW).Render(state.InputView)

	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		RenderTrigger(state.IsLoading, state.SpinnerFrame, s),
		"  ",
		RenderPresets(state.Presets, s),
	)

	blocks := []string{header, tagline, "", input, controls}
	if errLine := RenderError(state.ErrorMessage, s.Media); errLine != "" {
		blocks = append(blocks, errLine)
	}
	blocks = append(blocks, "")
	top := lipgloss.JoinVertical(lipgloss.Left, blocks...)

	result := state.Result
	result.Width = contentW - sectionFrameWidth(s)
	videos := RenderSection(VideosTitle, RenderVideos(result, s.Media), contentW, state.MediaFocused, s)
	audio := RenderSection(AudioTitle, RenderAudio(result, s.Media), contentW, state.MediaFocused, s)
	results := lipgloss.JoinVertical(lipgloss.Left, videos, audio)

	footer := lipgloss.JoinVertical(lipgloss.Left,
		s.Status.Render(ansi.Truncate(state.StatusText, contentW, "")),
		s.Help.Render(ansi.Truncate(state.HelpText, contentW, "")),
	)

	// One line is kept between the results and the footer.
	avail := state.Height - lipgloss.Height(top) - lipgloss.Height(footer) - 1
	results = FitResults(results, selectedLine(result, videos, s), avail, contentW, s)

	body := lipgloss.JoinVertical(lipgloss.Left, top, results)
	bodyH := lipgloss.Height(body)
	footerH := lipgloss.Height(footer)
	gap := state.Height - bodyH - footerH
	if gap < 1 {
		gap = 1
	}
	page := body + strings.Repeat("\n", gap) + footer
	page = lipgloss.NewStyle().PaddingLeft(2).Render(page)
	return PadLinesWithBackground(page, state.Width, state.Height, s.Bg)
}

// FitResults windows the result sections into height lines. When they do
// not fit, a viewport shows the part containing focusLine (-1 for none)
// and the last line reports how much is hidden above and below.
func FitResults(content string, focusLine, height, width int, styles PageStyles) string {
	total := lipgloss.Height(content)
	if total <= height {
		return content
	}

	vpH := height - 1
	if vpH < 1 {
		vpH = 1
	}
	vp := viewport.New(width, vpH)
	vp.SetContent(content)
	if focusLine >= vpH {
		vp.SetYOffset(focusLine - vpH + 2)
	}

	above := vp.YOffset
	below := total - vp.YOffset - vpH
	if below < 0 {
		below = 0
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		vp.View(),
		styles.Help.Render(ScrollIndicator(above, below)),
	)
}

// ScrollIndicator describes hidden result lines.
func ScrollIndicator(above, below int) string {
	parts := make([]string, 0, 2)
	if above > 0 {
		parts = append(parts, fmt.Sprintf("↑ %d more lines", above))
	}
	if below > 0 {
		parts = append(parts, fmt.Sprintf("↓ %d more lines", below))
	}
	return strings.Join(parts, " • ")
}

// selectedLine returns the line of the selected media row within the
// joined result sections, or -1.
func selectedLine(result ResultState, videosSection string, styles PageStyles) int {
	head := styles.Section.GetBorderTopSize() + styles.Section.GetPaddingTop() + 2 // title and blank line
	for i, item := range result.Videos {
		if item.Selected {
			return head + i
		}
	}
	if result.Audio != nil && result.Audio.Selected {
		return lipgloss.Height(videosSection) + head
	}
	return -1
}

// RenderTrigger renders the Generate button, disabled while loading.
func RenderTrigger(loading bool, spinnerFrame string, styles PageStyles) string {
	if loading {
		label := TriggerLoading
		if spinnerFrame != "" {
			label = spinnerFrame + " " + label
		}
		return styles.ButtonDisabled.Render(label)
	}
	return styles.Button.Render(TriggerIdle)
}

// RenderPresets renders the preset chips with their alt+N shortcuts.
func RenderPresets(presets []string, styles PageStyles) string {
	chips := make([]string, 0, len(presets))
	for i, name := range presets {
		chips = append(chips, styles.Preset.Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	return strings.Join(chips, " ")
}

// RenderSection renders a titled, bordered section.
func RenderSection(title, body string, width int, focused bool, styles PageStyles) string {
	style := styles.Section
	if focused {
		style = styles.SectionFocused
	}
	content := lipgloss.JoinVertical(lipgloss.Left, styles.SectionTitle.Render(title), "", body)
	return box(style, width).Render(content)
}

func sectionFrameWidth(styles PageStyles) int {
	w, _ := styles.Section.GetFrameSize()
	return w
}

// box sizes style so its outer width equals width. Width in lipgloss
// includes padding but not borders or margins.
func box(style lipgloss.Style, width int) lipgloss.Style {
	inner := width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins()
	if inner < 0 {
		inner = 0
	}
	return style.Width(inner)
}
