package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/tui/common"
)

// View renders the feed, or the overlay that currently has focus.
func (m Model) View() string {
	if m.showAllHints {
		return m.renderKeyDialog()
	}
	if m.showFavorites {
		return m.renderFavoritesView()
	}
	if m.showDetail {
		return m.renderDetailView()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader("Home") + "\n")

	switch {
	case m.loading && len(m.groups) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading your feed...\n", m.spinner.View()))
	case m.err != "":
		b.WriteString("  " + common.ErrorStyle.Render(m.err))
		b.WriteString("\n\n  Press r to retry.\n")
		if m.refreshing {
			b.WriteString(fmt.Sprintf("  %s Retrying...\n", m.spinner.View()))
		}
	case len(m.groups) == 0:
		if m.refreshing {
			b.WriteString(fmt.Sprintf("  %s Refreshing...\n", m.spinner.View()))
		}
		b.WriteString(common.NoticeStyle.Render(m.notice) + "\n")
	default:
		if m.refreshing {
			b.WriteString(fmt.Sprintf("  %s Refreshing...\n", m.spinner.View()))
		}
		b.WriteString(m.renderGroups())
		switch {
		case m.loadingMore:
			b.WriteString(fmt.Sprintf("\n  %s Loading older tuits...\n", m.spinner.View()))
		case m.pagingNotice != "":
			b.WriteString("\n" + common.NoticeStyle.Render(m.pagingNotice) + "\n")
		}
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) renderHeader(crumb string) string {
	title := common.AppTitleStyle.Render("tuiter")
	line := title + common.TaglineStyle.Render(crumb)
	if m.userEmail != "" {
		line += " " + common.UserBadgeStyle.Render(m.userEmail)
	}
	return line + "\n"
}

func (m Model) renderGroups() string {
	avail := m.feedViewportHeight()
	var b strings.Builder
	used := 0
	for i := m.startIndex; i < len(m.groups); i++ {
		card := m.renderGroup(i)
		h := lipgloss.Height(card)
		if used > 0 && m.height > 0 && used+h > avail {
			break
		}
		b.WriteString(card + "\n")
		used += h
	}
	return b.String()
}

func (m Model) contentWidth() int {
	w := m.width - 8
	if w <= 0 || w > 76 {
		w = 76
	}
	return w
}

// renderGroup draws one post card with up to maxInlineReplies replies.
func (m Model) renderGroup(i int) string {
	g := m.groups[i]
	width := m.contentWidth()
	now := time.Now()

	var body strings.Builder
	body.WriteString(m.renderPostHeader(g.Post, now) + "\n")
	body.WriteString(common.ContentStyle.Render(common.Preview(g.Post.Message, width, 3)) + "\n")
	body.WriteString(m.renderMeta(g.Post))

	shown := g.Replies
	if len(shown) > maxInlineReplies {
		shown = shown[len(shown)-maxInlineReplies:]
	}
	if hidden := len(g.Replies) - len(shown); hidden > 0 {
		body.WriteString("\n" + common.ReplyIndentStyle.Render(fmt.Sprintf("… %d earlier replies", hidden)))
	}
	for _, r := range shown {
		reply := m.renderPostHeader(r, now) + "\n" +
			common.ContentStyle.Render(common.Preview(r.Message, width-4, 2)) + "\n" +
			m.renderMeta(r)
		body.WriteString("\n" + common.ReplyIndentStyle.Render("↳ ") + strings.ReplaceAll(reply, "\n", "\n    "))
	}

	style := common.UnselectedStyle
	if i == m.cursor {
		style = common.SelectedStyle
	}
	return style.Width(width + 4).Render(body.String())
}

func (m Model) renderPostHeader(p domain.Post, now time.Time) string {
	author := common.AuthorStyle.Render("@" + p.Author)
	if m.favoriteSet[p.Author] {
		author += common.FavoriteBadgeStyle.Render("★")
	}
	if ts := common.RelativeTime(p.CreatedAt, now); ts != "" {
		author += " " + common.TimestampStyle.Render(ts)
	}
	return author
}

func (m Model) renderMeta(p domain.Post) string {
	icon, style := "♡", common.MetadataStyle
	if p.Liked {
		icon, style = "♥", common.LikeActiveStyle
	}
	meta := fmt.Sprintf("%s %d", style.Render(icon), p.Likes)
	if !p.IsReply() {
		meta += common.MetadataStyle.Render(fmt.Sprintf("  ↩ %d", p.Replies))
	}
	if m.likePending[p.ID] {
		meta += common.MetadataStyle.Render("  …")
	}
	return meta
}
