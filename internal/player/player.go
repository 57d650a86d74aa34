// Package player drives external media player processes so every generated
// video or audio item can be played, paused, and seeked on its own.
//
// Each Session owns one player process started with a JSON IPC socket
// (mpv's --input-ipc-server protocol). Control commands are single JSON
// lines written to that socket.
package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// Status is the playback state of a session.
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// String returns the display label for s.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	default:
		return "stopped"
	}
}

// ErrNotRunning is returned for control commands sent to a stopped session.
var ErrNotRunning = errors.New("player not running")

// Process is a running player.
type Process interface {
	Wait() error
	Kill() error
}

// Launcher starts a player for url that listens on socketPath.
type Launcher interface {
	Launch(url, socketPath string) (Process, error)
}

// ExecLauncher starts players as child processes.
type ExecLauncher struct {
	Command string
	Args    []string
}

// Launch implements Launcher.
func (l ExecLauncher) Launch(url, socketPath string) (Process, error) {
	args := make([]string, 0, len(l.Args)+4)
	args = append(args, "--no-terminal", "--idle=no", "--input-ipc-server="+socketPath)
	args = append(args, l.Args...)
	args = append(args, url)

	cmd := exec.Command(l.Command, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", l.Command, err)
	}
	return execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p execProcess) Wait() error { return p.cmd.Wait() }

func (p execProcess) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

// Item identifies one playable element. Key is unique per element, so the
// same URL listed twice yields two independent sessions.
type Item struct {
	Key string // e.g. "video-1", "audio"
	URL string
}

// Event reports a playback state change of the session bound to Key.
type Event struct {
	Key    string
	URL    string
	Status Status
	Err    error
}

// Manager owns one session per element key.
type Manager struct {
	mu       sync.Mutex
	launcher Launcher
	dir      string
	sessions map[string]*Session
	next     int
	events   chan Event
}

// NewManager creates a manager whose sockets live in a fresh temp directory.
func NewManager(launcher Launcher) (*Manager, error) {
	dir, err := os.MkdirTemp("", "animath-player-")
	if err != nil {
		return nil, fmt.Errorf("creating socket directory: %w", err)
	}
	return &Manager{
		launcher: launcher,
		dir:      dir,
		sessions: make(map[string]*Session),
		events:   make(chan Event, 32),
	}, nil
}

// Events returns the channel of session state changes.
func (m *Manager) Events() <-chan Event {
	return m.events
}

// Session returns the session for item, creating it on first use. A
// session still bound to another URL under the same key is stopped and
// replaced.
func (m *Manager) Session(item Item) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[item.Key]; ok {
		if s.url == item.URL {
			return s
		}
		_ = s.Stop()
	}
	s := &Session{
		key:      item.Key,
		url:      item.URL,
		socket:   filepath.Join(m.dir, fmt.Sprintf("media-%d.sock", m.next)),
		launcher: m.launcher,
		dial:     dialUnix,
		notify:   m.emit,
	}
	m.next++
	m.sessions[item.Key] = s
	return s
}

// TogglePause plays or pauses the session for item.
func (m *Manager) TogglePause(ctx context.Context, item Item) error {
	return m.Session(item).TogglePause(ctx)
}

// Seek moves the session for item by seconds.
func (m *Manager) Seek(ctx context.Context, item Item, seconds int) error {
	return m.Session(item).Seek(ctx, seconds)
}

// Stop stops the session for key if one exists.
func (m *Manager) Stop(key string) error {
	m.mu.Lock()
	s, ok := m.sessions[key]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	return s.Stop()
}

// StopAll stops and forgets every session.
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		_ = s.Stop()
	}
}

// Close stops all sessions and removes the socket directory.
func (m *Manager) Close() error {
	m.StopAll()
	return os.RemoveAll(m.dir)
}

func (m *Manager) emit(ev Event) {
	select {
	case m.events <- ev:
	default:
		// Drop when nobody is listening; the TUI re-reads on the next event.
	}
}

// Session controls one player process bound to one element.
type Session struct {
	mu       sync.Mutex
	key      string
	url      string
	socket   string
	launcher Launcher
	dial     dialFunc
	notify   func(Event)

	proc   Process
	status Status
	gen    int
}

// Key returns the element key of the session.
func (s *Session) Key() string {
	return s.key
}

// URL returns the media location of the session.
func (s *Session) URL() string {
	return s.url
}

// Status returns the current playback state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Play starts the player, or resumes it when paused.
func (s *Session) Play(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status {
	case StatusPlaying:
		return nil
	case StatusPaused:
		if err := s.send(ctx, "set_property", "pause", false); err != nil {
			return err
		}
		s.setStatus(StatusPlaying, nil)
		return nil
	}

	_ = os.Remove(s.socket)
	proc, err := s.launcher.Launch(s.url, s.socket)
	if err != nil {
		return err
	}
	s.proc = proc
	s.gen++
	s.setStatus(StatusPlaying, nil)
	go s.wait(proc, s.gen)
	return nil
}

// Pause pauses a playing session.
func (s *Session) Pause(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusPlaying {
		return nil
	}
	if err := s.send(ctx, "set_property", "pause", true); err != nil {
		return err
	}
	s.setStatus(StatusPaused, nil)
	return nil
}

// TogglePause plays a stopped or paused session and pauses a playing one.
func (s *Session) TogglePause(ctx context.Context) error {
	if s.Status() == StatusPlaying {
		return s.Pause(ctx)
	}
	return s.Play(ctx)
}

// Seek moves the playback position by seconds, relative to the current one.
func (s *Session) Seek(ctx context.Context, seconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusStopped {
		return ErrNotRunning
	}
	return s.send(ctx, "seek", seconds, "relative")
}

// Stop terminates the player process.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.proc == nil {
		return nil
	}
	err := s.proc.Kill()
	s.proc = nil
	s.gen++
	s.setStatus(StatusStopped, nil)
	_ = os.Remove(s.socket)
	return err
}

// wait marks the session stopped when the process it launched exits on its own.
func (s *Session) wait(proc Process, gen int) {
	err := proc.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return
	}
	s.proc = nil
	s.setStatus(StatusStopped, err)
}

func (s *Session) send(ctx context.Context, args ...any) error {
	if s.proc == nil {
		return ErrNotRunning
	}
	return sendCommand(ctx, s.dial, s.socket, args...)
}

// setStatus must be called with s.mu held.
func (s *Session) setStatus(status Status, err error) {
	s.status = status
	if s.notify != nil {
		s.notify(Event{Key: s.key, URL: s.url, Status: status, Err: err})
	}
}
