package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/animath/internal/player"
	"github.com/javiermolinar/animath/internal/tui/commands"
	"github.com/javiermolinar/animath/internal/tui/input"
)

// handleKeyMsg routes key presses based on focus.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.focus {
	case FocusMedia:
		return m.handleMediaKeys(msg)
	default:
		return m.handleInputKeys(msg)
	}
}

// handleInputKeys handles keys while the text input has focus.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()

	case "tab":
		if text, ok := input.Expand(m.input.Value(), presetShortcuts()); ok {
			return m.setInputText(text), nil
		}
		if len(m.state.MediaElements()) == 0 {
			return m, nil
		}
		m.focus = FocusMedia
		m.input.Blur()
		m.clampSelection()
		return m, nil

	case "alt+1", "alt+2", "alt+3":
		idx := int(msg.String()[len("alt+")] - '1')
		return m.applyPreset(idx), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.SetText(m.input.Value())
	return m, cmd
}

// handleMediaKeys handles keys while the media list has focus.
func (m Model) handleMediaKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.state.MediaElements()

	switch msg.String() {
	case "tab", "esc":
		m.focus = FocusInput
		return m, m.input.Focus()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < len(items)-1 {
			m.selected++
		}
		return m, nil

	case "y":
		if item, ok := m.selectedItem(); ok {
			return m, commands.CopyURL(item.URL)
		}
		return m, nil
	}

	if m.player == nil {
		return m, nil
	}
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case " ", "enter":
		return m, commands.TogglePlayback(m.player, item)
	case "left", "h":
		return m, commands.Seek(m.player, item, -m.seekStep())
	case "right", "l":
		return m, commands.Seek(m.player, item, m.seekStep())
	case "s":
		return m, commands.StopPlayback(m.player, item.Key)
	}
	return m, nil
}

// applyPreset replaces the input text with a preset prompt without submitting.
func (m Model) applyPreset(idx int) Model {
	if idx < 0 || idx >= len(presets) {
		return m
	}
	return m.setInputText(presets[idx].Prompt)
}

// setInputText replaces the request text without submitting.
func (m Model) setInputText(text string) Model {
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.state.SetText(m.input.Value())
	return m
}

func (m Model) selectedItem() (player.Item, bool) {
	items := m.state.MediaElements()
	if m.selected < 0 || m.selected >= len(items) {
		return player.Item{}, false
	}
	return items[m.selected], true
}

func (m *Model) clampSelection() {
	n := len(m.state.MediaElements())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) seekStep() int {
	if m.config.Player.SeekStep <= 0 {
		return 10
	}
	return m.config.Player.SeekStep
}
