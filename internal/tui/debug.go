package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// logKeyPress records a key press with the state it was handled in.
func (m Model) logKeyPress(msg tea.KeyMsg) {
	if !m.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	m.log.WithFields(logrus.Fields{
		"key":        msg.String(),
		"focus":      m.focus.String(),
		"loading":    m.state.IsLoading,
		"selected":   m.selected,
		"text_len":   len(m.state.RequestText),
		"request_id": m.state.RequestID,
	}).Debug("key")
}

// logError records an error that was reported to the user.
func (m Model) logError(context string, err error) {
	if err == nil {
		return
	}
	m.log.WithError(err).WithField("context", context).Error("error")
}
