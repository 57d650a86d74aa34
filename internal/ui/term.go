package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI.
var (
	colorHeader = color.New(color.Bold)
	colorURL    = color.New(color.FgCyan)
	colorError  = color.New(color.FgRed, color.Bold)
	colorMuted  = color.New(color.FgWhite, color.Faint)
	colorOK     = color.New(color.FgGreen)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatURL(s string) string {
	return colorURL.Sprint(s)
}

func formatError(s string) string {
	return colorError.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatOK(s string) string {
	return colorOK.Sprint(s)
}
