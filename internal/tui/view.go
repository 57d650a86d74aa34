package tui

import (
	"github.com/javiermolinar/animath/internal/player"
	"github.com/javiermolinar/animath/internal/tui/view"
)

const (
	helpInput = "enter generate • alt+1-3 or /name+tab preset • tab media • ctrl+c quit"
	helpMedia = "↑/↓ select • space play/pause • ←/→ seek • s stop • y copy url • tab input"
)

// View renders the TUI.
func (m Model) View() string {
	return view.RenderPage(m.pageState())
}

func (m Model) pageState() view.PageState {
	spinnerFrame := ""
	if m.state.IsLoading {
		spinnerFrame = m.spinner.View()
	}

	help := helpInput
	if m.focus == FocusMedia {
		help = helpMedia
	}

	return view.PageState{
		Width:        m.width,
		Height:       m.height,
		InputView:    m.input.View(),
		InputFocused: m.focus == FocusInput,
		IsLoading:    m.state.IsLoading,
		SpinnerFrame: spinnerFrame,
		Presets:      presetNames(),
		ErrorMessage: m.state.ErrorMessage,
		Result:       m.resultState(),
		MediaFocused: m.focus == FocusMedia,
		StatusText:   m.statusMsg,
		HelpText:     help,
		Styles:       m.styles,
	}
}

// resultState maps the view state onto the presenter input.
func (m Model) resultState() view.ResultState {
	var (
		videos []view.MediaItem
		audio  *view.MediaItem
	)
	for i, el := range m.state.MediaElements() {
		item := m.mediaItem(el, i)
		if el.Key == AudioKey {
			audio = &item
			continue
		}
		videos = append(videos, item)
	}

	return view.ResultState{
		IsLoading: m.state.IsLoading,
		Videos:    videos,
		Audio:     audio,
	}
}

func (m Model) mediaItem(el player.Item, index int) view.MediaItem {
	status, ok := m.playback[el.Key]
	if !ok {
		status = player.StatusStopped
	}
	return view.MediaItem{
		URL:      el.URL,
		Status:   status.String(),
		Selected: m.focus == FocusMedia && m.selected == index,
	}
}

func (m Model) inputWidth() int {
	// Border, padding, and the "> " prompt.
	w := view.ContentWidth(m.width) - 4 - len(m.input.Prompt)
	if w < 1 {
		return 1
	}
	return w
}
