// Package input resolves slash shortcuts typed into the request field.
package input

import "strings"

// Shortcut maps a slash keyword to the text it expands to.
type Shortcut struct {
	Keyword string // including the leading slash, e.g. "/equations"
	Text    string
}

// MatchingShortcuts returns shortcuts whose keyword starts with value.
// Only a single slash-prefixed word matches.
func MatchingShortcuts(value string, shortcuts []Shortcut) []Shortcut {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "/") || strings.Contains(trimmed, " ") {
		return nil
	}

	prefix := strings.ToLower(trimmed)
	matches := make([]Shortcut, 0, len(shortcuts))
	for _, s := range shortcuts {
		if strings.HasPrefix(strings.ToLower(s.Keyword), prefix) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Expand returns the text of the first matching shortcut.
func Expand(value string, shortcuts []Shortcut) (string, bool) {
	matches := MatchingShortcuts(value, shortcuts)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Text, true
}
