package login

import (
	"strings"

	"github.com/tuiter-app/tuiter/tui/common"
)

// View renders the form.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("tuiter"))
	if m.mode == ModeRegister {
		b.WriteString(common.TaglineStyle.Render("Create an account"))
	} else {
		b.WriteString(common.TaglineStyle.Render("Sign in"))
	}
	b.WriteString("\n\n")

	labels := []string{"Name", "Email", "Password"}
	if m.mode == ModeRegister {
		b.WriteString(common.RenderFields(labels, m.inputs, m.focus))
	} else {
		b.WriteString(common.RenderFields(labels[1:], m.inputs[1:], m.focus-1))
	}

	switch {
	case m.busy:
		b.WriteString("  Signing in...\n")
	case m.err != "":
		b.WriteString("  " + common.ErrorStyle.Render(m.err) + "\n")
	}

	hint := "enter: next / submit • ctrl+t: create an account • esc: quit"
	if m.mode == ModeRegister {
		hint = "enter: next / submit • ctrl+t: sign in instead • esc: quit"
	}
	b.WriteString(common.StatusBarStyle.Render(hint))
	return b.String()
}
