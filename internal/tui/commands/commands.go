// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/animath/internal/generate"
	"github.com/javiermolinar/animath/internal/player"
)

// Generator produces media for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt, requestID string) (*generate.Result, error)
}

// MediaPlayer controls playback of individual media elements.
type MediaPlayer interface {
	TogglePause(ctx context.Context, item player.Item) error
	Seek(ctx context.Context, item player.Item, seconds int) error
	Stop(key string) error
	StopAll()
	Events() <-chan player.Event
}

// GenerationDoneMsg is sent when a submission resolves, successfully or not.
type GenerationDoneMsg struct {
	RequestID string
	Result    *generate.Result
	Err       error
}

// PlayerEventMsg is sent when a player session changes state.
type PlayerEventMsg struct {
	Event player.Event
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Generate creates a command that submits prompt to the generator.
// The command always yields a GenerationDoneMsg, even if the generator panics.
func Generate(gen Generator, prompt, requestID string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = GenerationDoneMsg{RequestID: requestID, Err: fmt.Errorf("generation panicked: %v", r)}
			}
		}()

		result, err := gen.Generate(context.Background(), prompt, requestID)
		return GenerationDoneMsg{RequestID: requestID, Result: result, Err: err}
	}
}

// ListenPlayer waits for the next player event.
func ListenPlayer(events <-chan player.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return PlayerEventMsg{Event: ev}
	}
}

// TogglePlayback plays or pauses item.
func TogglePlayback(p MediaPlayer, item player.Item) tea.Cmd {
	return func() tea.Msg {
		if err := p.TogglePause(context.Background(), item); err != nil {
			return ErrMsg{Err: fmt.Errorf("playback: %w", err)}
		}
		return nil
	}
}

// Seek moves the playback position of item by seconds.
func Seek(p MediaPlayer, item player.Item, seconds int) tea.Cmd {
	return func() tea.Msg {
		if err := p.Seek(context.Background(), item, seconds); err != nil {
			return ErrMsg{Err: fmt.Errorf("seek: %w", err)}
		}
		return nil
	}
}

// StopPlayback stops the player of the element with key.
func StopPlayback(p MediaPlayer, key string) tea.Cmd {
	return func() tea.Msg {
		if err := p.Stop(key); err != nil {
			return ErrMsg{Err: fmt.Errorf("stop: %w", err)}
		}
		return nil
	}
}

// StopAllPlayback stops every running player.
func StopAllPlayback(p MediaPlayer) tea.Cmd {
	return func() tea.Msg {
		p.StopAll()
		return nil
	}
}

// CopyURL copies url to the system clipboard.
func CopyURL(url string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(url); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying url: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied " + url}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
