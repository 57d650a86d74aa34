// Package tui provides the terminal user interface for animath.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/javiermolinar/animath/internal/config"
	"github.com/javiermolinar/animath/internal/diag"
	"github.com/javiermolinar/animath/internal/player"
	"github.com/javiermolinar/animath/internal/tui/commands"
	"github.com/javiermolinar/animath/internal/tui/theme"
	"github.com/javiermolinar/animath/internal/tui/view"
)

// Focus identifies which part of the page receives keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusMedia
)

// String returns the focus name.
func (f Focus) String() string {
	if f == FocusMedia {
		return "media"
	}
	return "input"
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	client commands.Generator
	player commands.MediaPlayer
	log    *diag.Logger

	// Theme and styles
	theme  *theme.Theme
	styles view.PageStyles

	// State
	state    State
	focus    Focus
	selected int                      // index into state.MediaElements()
	playback map[string]player.Status // last reported status per element key

	// Components
	input   textinput.Model
	spinner spinner.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	newRequestID func() string
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithPlayer sets the media player used for playback controls.
func WithPlayer(p commands.MediaPlayer) ModelOption {
	return func(m *Model) {
		m.player = p
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *diag.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithRequestIDs overrides how submission IDs are generated.
func WithRequestIDs(next func() string) ModelOption {
	return func(m *Model) {
		m.newRequestID = next
	}
}

// New creates a new TUI model.
// A nil cfg uses config.Default.
func New(client commands.Generator, cfg *config.Config, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "Enter request for creating Manim animation"
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.PlaceholderStyle = styles.Media.Placeholder
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		config:       cfg,
		client:       client,
		log:          diag.Discard(),
		theme:        t,
		styles:       styles,
		focus:        FocusInput,
		playback:     make(map[string]player.Status),
		input:        ti,
		spinner:      sp,
		newRequestID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// State returns a copy of the view state.
func (m Model) State() State {
	return m.state
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.player != nil {
		cmds = append(cmds, commands.ListenPlayer(m.player.Events()))
	}
	return tea.Batch(cmds...)
}

// Run starts the TUI and blocks until the user quits.
func Run(client commands.Generator, cfg *config.Config, opts ...ModelOption) error {
	model := New(client, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok && m.player != nil {
		m.player.StopAll()
	}
	return err
}
