package common

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// NewField builds a single-line input with the shared prompt style.
func NewField(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 48
	ti.Prompt = "› "
	return ti
}

// MoveFocus shifts focus by delta, wrapping around, and returns the newly
// focused index.
func MoveFocus(fields []textinput.Model, focus, delta int) int {
	if len(fields) == 0 {
		return 0
	}
	next := (focus + delta + len(fields)) % len(fields)
	for i := range fields {
		if i == next {
			fields[i].Focus()
			continue
		}
		fields[i].Blur()
	}
	return next
}

// RenderFields draws labelled inputs, highlighting the focused one.
func RenderFields(labels []string, fields []textinput.Model, focus int) string {
	var b strings.Builder
	for i, f := range fields {
		label := BlurredFieldStyle.Render(labels[i])
		if i == focus {
			label = FocusedFieldStyle.Render(labels[i])
		}
		b.WriteString("  " + label + "\n  " + f.View() + "\n\n")
	}
	return b.String()
}
