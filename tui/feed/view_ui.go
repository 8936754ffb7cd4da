package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuiter-app/tuiter/tui/common"
)

func (m Model) helpView() string {
	status := common.HelpLine(m.keys.ShortHelp())
	if !m.hasMore && len(m.groups) > 0 {
		status = fmt.Sprintf("page %d (end) • %s", m.page, status)
	} else if len(m.groups) > 0 {
		status = fmt.Sprintf("page %d • %s", m.page, status)
	}
	return common.StatusBarStyle.Render(status)
}

func (m Model) renderKeyDialog() string {
	var b strings.Builder
	b.WriteString(m.renderHeader("Keys") + "\n")
	for _, k := range m.keys.FullHelp() {
		h := k.Help()
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			common.FocusedFieldStyle.Render(fmt.Sprintf("%-8s", h.Key)),
			common.ContentStyle.Render(h.Desc)))
	}
	b.WriteString(common.StatusBarStyle.Render("? or esc to close"))
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func (m Model) renderFavoritesView() string {
	var b strings.Builder
	b.WriteString(m.renderHeader("Favorites") + "\n")
	if len(m.favoriteList) == 0 {
		b.WriteString(common.NoticeStyle.Render("No favorite authors yet. Press f on a tuit to add one.") + "\n")
	}
	for i, f := range m.favoriteList {
		line := common.AuthorStyle.Render("@" + f.Author)
		if f.Avatar != "" {
			line += " " + common.MetadataStyle.Render(f.Avatar)
		}
		if i == m.favCursor {
			b.WriteString(common.SelectedStyle.Render(line) + "\n")
			continue
		}
		b.WriteString(common.UnselectedStyle.Render(line) + "\n")
	}
	b.WriteString(common.StatusBarStyle.Render("↑/↓ move • d remove • esc back"))
	return b.String()
}
