package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/javiermolinar/animath/internal/ui"
)

func main() {
	ctx := context.Background()
	app := ui.NewApp()

	// The generate command prints its own failure message.
	errorHandler := func(w io.Writer, styles fang.Styles, err error) {
		if errors.Is(err, ui.ErrGenerationFailed) {
			return
		}
		fang.DefaultErrorHandler(w, styles, err)
	}

	if err := fang.Execute(ctx, app.Root(),
		fang.WithVersion(ui.Version),
		fang.WithCommit(ui.Commit),
		fang.WithErrorHandler(errorHandler),
	); err != nil {
		os.Exit(1)
	}
}
