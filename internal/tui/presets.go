package tui

import "github.com/javiermolinar/animath/internal/tui/input"

// Preset is a starter prompt offered under the input.
type Preset struct {
	Name    string
	Keyword string
	Prompt  string
}

var presets = []Preset{
	{
		Name:    "Animate Equations",
		Keyword: "/equations",
		Prompt:  "Animate the step-by-step derivation of the quadratic formula",
	},
	{
		Name:    "Visualize Concepts",
		Keyword: "/concepts",
		Prompt:  "Visualize how a Fourier series approximates a square wave",
	},
	{
		Name:    "Explain Theorems",
		Keyword: "/theorems",
		Prompt:  "Explain the Pythagorean theorem with a geometric proof",
	},
}

func presetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

func presetShortcuts() []input.Shortcut {
	shortcuts := make([]input.Shortcut, len(presets))
	for i, p := range presets {
		shortcuts[i] = input.Shortcut{Keyword: p.Keyword, Text: p.Prompt}
	}
	return shortcuts
}
