package feed

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tuiter-app/tuiter/domain"
)

// postPath locates a post in the feed tree: top-level posts first, then
// each group's replies. reply is -1 for a top-level match.
func (m Model) postPath(id int64) (group, reply int, ok bool) {
	for i, g := range m.groups {
		if g.Post.ID == id {
			return i, -1, true
		}
	}
	for i, g := range m.groups {
		for j, r := range g.Replies {
			if r.ID == id {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// findPost returns the tracked post with id, looking in the feed tree and
// then in the open thread.
func (m Model) findPost(id int64) (domain.Post, bool) {
	if gi, ri, ok := m.postPath(id); ok {
		if ri < 0 {
			return m.groups[gi].Post, true
		}
		return m.groups[gi].Replies[ri], true
	}
	if m.showDetail {
		if m.detailPost.ID == id {
			return m.detailPost, true
		}
		for _, r := range m.detailReplies {
			if r.ID == id {
				return r, true
			}
		}
	}
	return domain.Post{}, false
}

// setLiked flips the liked flag and adjusts the counter. It does nothing
// when the post already carries the requested state.
func setLiked(p *domain.Post, liked bool) {
	if p.Liked == liked {
		return
	}
	p.Liked = liked
	if liked {
		p.Likes++
	} else if p.Likes > 0 {
		p.Likes--
	}
}

func (m *Model) applyLike(id int64, liked bool) {
	if gi, ri, ok := m.postPath(id); ok {
		if ri < 0 {
			setLiked(&m.groups[gi].Post, liked)
		} else {
			setLiked(&m.groups[gi].Replies[ri], liked)
		}
	}
	if m.detailPost.ID == id {
		setLiked(&m.detailPost, liked)
	}
	for i := range m.detailReplies {
		if m.detailReplies[i].ID == id {
			setLiked(&m.detailReplies[i], liked)
		}
	}
}

func (m Model) selectedKey() int64 {
	if g, ok := m.SelectedGroup(); ok {
		return g.Key()
	}
	return 0
}

func (m *Model) setCursorByKey(key int64) bool {
	if key == 0 {
		return false
	}
	for i, g := range m.groups {
		if g.Key() == key {
			m.cursor = i
			return true
		}
	}
	return false
}

func (m Model) feedViewportHeight() int {
	// Header (3) and footer (3) lines.
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

// ensureFeedCursorVisible moves startIndex so the selected group is fully
// rendered within the viewport.
func (m *Model) ensureFeedCursorVisible() {
	if len(m.groups) == 0 {
		m.cursor = 0
		m.startIndex = 0
		return
	}
	if m.cursor >= len(m.groups) {
		m.cursor = len(m.groups) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.startIndex > m.cursor {
		m.startIndex = m.cursor
	}
	if m.height <= 0 {
		return
	}
	avail := m.feedViewportHeight()
	for m.startIndex < m.cursor {
		used := 0
		for i := m.startIndex; i <= m.cursor; i++ {
			used += lipgloss.Height(m.renderGroup(i))
		}
		if used <= avail {
			break
		}
		m.startIndex++
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.ensureFeedCursorVisible()
}

// nearEnd reports whether the cursor is close enough to the bottom to
// prefetch the next page.
func (m Model) nearEnd() bool {
	return len(m.groups) > 0 && m.cursor >= len(m.groups)-prefetchTrigger
}
