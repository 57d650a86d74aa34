package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/animath/internal/diag"
	"github.com/javiermolinar/animath/internal/generate"
	"github.com/javiermolinar/animath/internal/tui"
	"github.com/javiermolinar/animath/internal/tui/view"
)

func (a *App) generateCmd() *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "generate [prompt...]",
		Short: "Generate an animation without the TUI",
		Long: `Send a prompt to the generation service and print the resulting
video and audio URLs.

Example:
  animath generate "Visualize how a Fourier series approximates a square wave"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if endpoint != "" {
				cfg.API.Endpoint = endpoint
			}

			log, err := diag.Open(cfg.Log, a.debug)
			if err != nil {
				return err
			}
			defer func() { _ = log.Close() }()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			client := generate.NewClient(cfg.API.Endpoint)
			return a.runGenerate(ctx, client, log, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Override the generate-script endpoint")

	return cmd
}

func (a *App) runGenerate(ctx context.Context, client *generate.Client, log *diag.Logger, prompt string) error {
	id := uuid.NewString()
	entry := log.WithFields(logrus.Fields{
		"request_id": id,
		"endpoint":   client.Endpoint(),
	})
	entry.WithField("prompt_len", len(prompt)).Info("submitting generation request")

	fmt.Fprintln(a.errOut, formatMuted(view.TriggerLoading))

	result, err := client.Generate(ctx, prompt, id)
	if err != nil {
		fields := logrus.Fields{"kind": generate.Kind(err)}
		var statusErr *generate.StatusError
		if errors.As(err, &statusErr) {
			fields["status_code"] = statusErr.Code
			fields["body"] = statusErr.Body
		}
		entry.WithFields(fields).WithError(err).Error("generation failed")

		fmt.Fprintln(a.errOut, formatError(tui.ErrorMessage))
		return ErrGenerationFailed
	}

	entry.WithField("videos", len(result.VideoURLs)).Info("generation completed")
	printResult(a.out, result)
	return nil
}

func printResult(w io.Writer, result *generate.Result) {
	rule := formatMuted(strings.Repeat("─", min(termWidth(), 60)))

	fmt.Fprintln(w, formatHeader("Generated Videos"))
	fmt.Fprintln(w, rule)
	if len(result.VideoURLs) == 0 {
		fmt.Fprintln(w, formatMuted("  (none)"))
	}
	for i, url := range result.VideoURLs {
		fmt.Fprintf(w, "  %d. %s\n", i+1, formatURL(url))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, formatHeader("Generated Audio"))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s\n", formatURL(result.AudioURL))
	fmt.Fprintln(w)
	fmt.Fprintln(w, formatOK(fmt.Sprintf("Done: %d video(s), 1 audio", len(result.VideoURLs))))
}
