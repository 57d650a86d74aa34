// Package ui wires the command line: the interactive TUI, a headless
// generate command, and configuration management.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/animath/internal/config"
	"github.com/javiermolinar/animath/internal/diag"
	"github.com/javiermolinar/animath/internal/generate"
	"github.com/javiermolinar/animath/internal/player"
	"github.com/javiermolinar/animath/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrGenerationFailed is returned by the generate command after the
// failure message has been printed.
var ErrGenerationFailed = errors.New("generation failed")

// App holds the CLI application state.
type App struct {
	root       *cobra.Command
	configPath string
	debug      bool // Enable debug logging
	noColor    bool

	out    io.Writer
	errOut io.Writer
}

// NewApp creates a new CLI application.
func NewApp() *App {
	a := &App{out: os.Stdout, errOut: os.Stderr}

	a.root = &cobra.Command{
		Use:   "animath",
		Short: "Turn math prompts into Manim animations",
		Long: `AniMath sends a text prompt to a generation service and shows the
resulting animation videos and narration audio.

Just animate math, and explore it like a 3b1b.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Path to the config file")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (key presses and state changes)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.generateCmd())

	return a
}

// Root returns the root command.
func (a *App) Root() *cobra.Command {
	return a.root
}

// SetOutput redirects standard and error output.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.out = out
	a.errOut = errOut
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "animath %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (a *App) runTUI() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	log, err := diag.Open(cfg.Log, a.debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	players, err := player.NewManager(player.ExecLauncher{
		Command: cfg.Player.Command,
		Args:    cfg.Player.Args,
	})
	if err != nil {
		return err
	}
	defer func() { _ = players.Close() }()

	log.WithField("endpoint", cfg.API.Endpoint).Info("starting")
	client := generate.NewClient(cfg.API.Endpoint)
	return tui.Run(client, cfg, tui.WithPlayer(players), tui.WithLogger(log))
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}
