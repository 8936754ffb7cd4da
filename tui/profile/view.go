package profile

import (
	"strings"

	"github.com/tuiter-app/tuiter/tui/common"
)

// View renders the profile form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("tuiter"))
	b.WriteString(common.TaglineStyle.Render("Profile"))
	if m.profile.Email != "" {
		b.WriteString(" " + common.UserBadgeStyle.Render(m.profile.Email))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  Loading profile...\n")
		return b.String()
	case m.err != "":
		b.WriteString("  " + common.ErrorStyle.Render(m.err) + "\n\n")
	}

	b.WriteString(common.RenderFields(fieldLabels, m.inputs, m.focus))
	if m.saving {
		b.WriteString("  Saving...\n")
	}
	b.WriteString(common.StatusBarStyle.Render("tab: next field • ctrl+s: save • esc: back"))
	return b.String()
}
