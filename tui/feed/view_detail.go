package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuiter-app/tuiter/tui/common"
)

func (m Model) renderDetailView() string {
	var b strings.Builder
	b.WriteString(m.renderHeader(fmt.Sprintf("Home > Tuit %d", m.detailID)) + "\n")

	if m.detailErr != "" {
		b.WriteString("  " + common.ErrorStyle.Render(m.detailErr) + "\n\n")
	}

	avail := m.feedViewportHeight()
	used := 0
	for i := m.detailStart; i <= len(m.detailReplies); i++ {
		item := m.renderDetailItem(i)
		h := lipgloss.Height(item)
		if used > 0 && m.height > 0 && used+h > avail {
			break
		}
		b.WriteString(item + "\n")
		used += h
	}

	switch {
	case m.detailLoading:
		b.WriteString(fmt.Sprintf("  %s Loading replies...\n", m.spinner.View()))
	case len(m.detailReplies) == 0 && m.detailErr == "":
		b.WriteString(common.NoticeStyle.Render("No replies yet. Press c to reply.") + "\n")
	}

	help := []string{"↑/↓ move", "l like", "c reply", "C inline reply", "f favorite", "r reload", "esc back"}
	b.WriteString(common.StatusBarStyle.Render(strings.Join(help, " • ")))
	return b.String()
}

// renderDetailItem draws the root post at index 0 and replies after it.
func (m Model) renderDetailItem(i int) string {
	p := m.detailPost
	indent := 0
	if i > 0 {
		p = m.detailReplies[i-1]
		indent = 4
	}
	width := m.contentWidth() - indent
	now := time.Now()

	var body strings.Builder
	body.WriteString(m.renderPostHeader(p, now) + "\n")
	if i == 0 && !p.CreatedAt.IsZero() {
		body.WriteString(common.TimestampStyle.Render(p.CreatedAt.Local().Format("Monday, Jan 02, 2006 at 15:04")) + "\n")
	}
	body.WriteString(common.ContentStyle.Render(common.Preview(p.Message, width, 0)) + "\n")
	body.WriteString(m.renderMeta(p))

	style := common.UnselectedStyle
	if i == m.detailCursor {
		style = common.SelectedStyle
	}
	return style.MarginLeft(indent).Width(width + 4).Render(body.String())
}
