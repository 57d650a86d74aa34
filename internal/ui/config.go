package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/animath/internal/config"
	"github.com/javiermolinar/animath/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Configuration management.

If no config file exists, creates one with default values.
Displays the current config, and with --edit opens a form to change it.

Example:
  animath config --edit`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runConfig(edit)
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the configuration interactively")

	return cmd
}

func (a *App) runConfig(edit bool) error {
	configPath := a.configPath
	fmt.Fprintf(a.out, "Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if errors.Is(fileErr, os.ErrNotExist) {
		fmt.Fprintln(a.out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(a.out, "Created %s\n\n", configPath)
	}

	printConfig(a.out, cfg)

	if !edit {
		return nil
	}

	if err := editConfig(cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(a.out, "\n"+formatOK("Configuration saved!"))
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, formatHeader("Current configuration:"))
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[api]")
	fmt.Fprintf(w, "  endpoint    = %s\n", cfg.API.Endpoint)
	fmt.Fprintln(w, "\n[player]")
	fmt.Fprintf(w, "  command     = %s\n", cfg.Player.Command)
	if len(cfg.Player.Args) > 0 {
		fmt.Fprintf(w, "  args        = %s\n", strings.Join(cfg.Player.Args, " "))
	}
	fmt.Fprintf(w, "  seek_step   = %d\n", cfg.Player.SeekStep)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme       = %s\n", cfg.UI.Theme)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  path        = %s\n", cfg.Log.Path)
	fmt.Fprintf(w, "  max_size_mb = %d\n", cfg.Log.MaxSizeMB)
	fmt.Fprintf(w, "  max_backups = %d\n", cfg.Log.MaxBackups)
}

// editConfig runs the interactive form and applies the answers to cfg.
func editConfig(cfg *config.Config) error {
	endpoint := cfg.API.Endpoint
	command := cfg.Player.Command
	args := strings.Join(cfg.Player.Args, " ")
	seekStep := strconv.Itoa(cfg.Player.SeekStep)
	themeName := cfg.UI.Theme

	options := make([]huh.Option[string], 0, len(theme.Available()))
	for _, name := range theme.Available() {
		options = append(options, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Generate endpoint").
				Value(&endpoint).
				Validate(func(v string) error {
					candidate := *cfg
					candidate.API.Endpoint = v
					return candidate.Validate()
				}),
			huh.NewInput().
				Title("Player command").
				Placeholder("mpv").
				Value(&command).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Player arguments").
				Placeholder("optional, space separated").
				Value(&args),
			huh.NewInput().
				Title("Seek step (seconds)").
				Value(&seekStep).
				Validate(validateSeekStep),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(options...).
				Value(&themeName),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return err
	}

	step, err := strconv.Atoi(strings.TrimSpace(seekStep))
	if err != nil {
		return fmt.Errorf("seek step: %w", err)
	}

	cfg.API.Endpoint = strings.TrimSpace(endpoint)
	cfg.Player.Command = strings.TrimSpace(command)
	cfg.Player.Args = strings.Fields(args)
	cfg.Player.SeekStep = step
	cfg.UI.Theme = themeName
	return nil
}

func validateSeekStep(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("must be a whole number of seconds")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
