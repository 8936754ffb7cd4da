package compose

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/tui/common"
)

// View renders the compose view based on the active mode.
func (m Model) View() string {
	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("tuiter"))
		if m.parent != nil {
			b.WriteString(common.TaglineStyle.Render("Replying to @" + m.parent.Author))
			b.WriteString("\n\n")
			b.WriteString(common.ReplyIndentStyle.Render(common.Preview(m.parent.Message, 68, 2)))
		} else {
			b.WriteString(common.TaglineStyle.Render("New tuit"))
		}
		b.WriteString("\n\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n\n")

		if m.status != "" {
			b.WriteString(common.NoticeStyle.Render(m.status) + "\n")
		}
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("  ctrl+d: post • esc: cancel • %d/%d chars",
				utf8.RuneCountInString(m.textarea.Value()), domain.MaxMessageLength),
		))

		return b.String()
	}

	return ""
}
