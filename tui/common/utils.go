package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
)

// Preview wraps text to width and keeps at most maxLines lines, marking
// truncation with an ellipsis.
func Preview(text string, width, maxLines int) string {
	if width < 10 {
		width = 10
	}
	wrapped := ansi.Wordwrap(strings.TrimSpace(text), width, " -")
	lines := strings.Split(wrapped, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := ansi.Truncate(lines[maxLines-1], width-1, "")
		lines[maxLines-1] = last + "…"
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}

// RelativeTime renders a compact age such as "5m" or "3d".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
	return t.Format("Jan 02")
}

// HelpLine renders bindings as "k desc • k desc".
func HelpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
