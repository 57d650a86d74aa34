package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/animath/internal/generate"
	"github.com/javiermolinar/animath/internal/player"
	"github.com/javiermolinar/animath/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.logKeyPress(msg)
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.inputWidth()
		return m, nil

	case commands.GenerationDoneMsg:
		return m.handleGenerationDone(msg), nil

	case spinner.TickMsg:
		if !m.state.IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.PlayerEventMsg:
		m.handlePlayerEvent(msg.Event)
		if m.player == nil {
			return m, nil
		}
		return m, commands.ListenPlayer(m.player.Events())

	case commands.ErrMsg:
		m.logError("command failed", msg.Err)
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err), 5*time.Second)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, 3*time.Second)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.focus == FocusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit starts a new submission with the current text. While a request is
// in flight the trigger is disabled and submit does nothing.
func (m Model) submit() (Model, tea.Cmd) {
	if m.state.IsLoading {
		return m, nil
	}

	id := m.newRequestID()
	text := m.state.RequestText
	m.state.BeginSubmission(id)
	m.selected = 0
	m.focus = FocusInput
	m.input.Focus()
	m.playback = make(map[string]player.Status)

	m.log.WithFields(logrus.Fields{
		"request_id": id,
		"prompt_len": len(text),
	}).Info("submitting generation request")

	cmds := []tea.Cmd{
		commands.Generate(m.client, text, id),
		m.spinner.Tick,
	}
	if m.player != nil {
		cmds = append(cmds, commands.StopAllPlayback(m.player))
	}
	return m, tea.Batch(cmds...)
}

// handleGenerationDone maps a completed request onto the state.
func (m Model) handleGenerationDone(msg commands.GenerationDoneMsg) Model {
	entry := m.log.WithField("request_id", msg.RequestID)

	if msg.Err == nil && msg.Result == nil {
		msg.Err = fmt.Errorf("%w: empty result", generate.ErrContract)
	}

	if msg.Err != nil {
		if !m.state.Fail(msg.RequestID) {
			entry.Debug("discarding stale failure")
			return m
		}
		fields := logrus.Fields{"kind": generate.Kind(msg.Err)}
		var statusErr *generate.StatusError
		if errors.As(msg.Err, &statusErr) {
			fields["status_code"] = statusErr.Code
			fields["body"] = statusErr.Body
		}
		entry.WithFields(fields).WithError(msg.Err).Error("generation failed")
		return m
	}

	if !m.state.Succeed(msg.RequestID, msg.Result) {
		entry.Debug("discarding stale result")
		return m
	}
	entry.WithFields(logrus.Fields{
		"videos": len(msg.Result.VideoURLs),
		"audio":  msg.Result.AudioURL,
	}).Info("generation completed")
	return m
}

// handlePlayerEvent records the status of one element. Events from
// sessions of an earlier result are ignored.
func (m *Model) handlePlayerEvent(ev player.Event) {
	if ev.Err != nil {
		m.logError("player exited", ev.Err)
	}
	item, ok := m.state.element(ev.Key)
	if !ok || item.URL != ev.URL {
		return
	}
	m.playback[ev.Key] = ev.Status
}

func (m Model) setStatus(text string, d time.Duration) (Model, tea.Cmd) {
	m.statusMsg = text
	m.statusTime = time.Now().Add(d)
	return m, commands.ClearStatusAfter(d)
}
