package feed

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/infra/logging"
	"github.com/tuiter-app/tuiter/tui/toast"
)

// OpenDetail shows the thread for the selected group, seeded with the
// replies already known, and fetches the full thread.
func (m Model) OpenDetail() (Model, tea.Cmd) {
	g, ok := m.SelectedGroup()
	if !ok {
		return m, nil
	}
	m.showDetail = true
	m.detailID = g.Post.ID
	m.detailPost = g.Post
	m.detailReplies = append([]domain.Post(nil), g.Replies...)
	m.detailLoading = true
	m.detailErr = ""
	m.detailCursor = 0
	m.detailStart = 0
	return m, m.fetchThread(g.Post.ID)
}

func (m *Model) closeDetail() {
	m.showDetail = false
	m.detailID = 0
	m.detailPost = domain.Post{}
	m.detailReplies = nil
	m.detailLoading = false
	m.detailErr = ""
	m.detailCursor = 0
	m.detailStart = 0
}

func (m Model) handleDetailThreadMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ThreadLoadedMsg:
		if !m.showDetail || msg.ID != m.detailID {
			return m, nil
		}
		m.detailLoading = false
		m.detailErr = ""
		m.detailPost = msg.Post
		m.detailReplies = threadReplies(msg.ID, msg.Replies)
		if m.detailCursor > len(m.detailReplies) {
			m.detailCursor = len(m.detailReplies)
		}
		m.syncGroup(m.detailPost, m.detailReplies)
		m.ensureDetailCursorVisible()
		return m, nil

	case ThreadErrorMsg:
		if !m.showDetail || msg.ID != m.detailID {
			return m, nil
		}
		m.detailLoading = false
		logging.Error.Printf("loading thread %d: %v", msg.ID, msg.Err)
		if errors.Is(msg.Err, domain.ErrNotFound) {
			m.detailErr = "This tuit no longer exists."
			return m, nil
		}
		m.detailErr = "Could not load the thread."
		return m, toast.Error(m.detailErr)
	}
	return m, nil
}

// threadReplies keeps only direct replies to root, in server order.
func threadReplies(root int64, replies []domain.Post) []domain.Post {
	out := make([]domain.Post, 0, len(replies))
	for _, r := range replies {
		if r.ParentID == 0 {
			r.ParentID = root
		}
		if r.ParentID != root {
			continue
		}
		out = append(out, r)
	}
	return out
}

// syncGroup refreshes the feed group of a fetched thread so the feed shows
// the same counters as the detail view.
func (m *Model) syncGroup(post domain.Post, replies []domain.Post) {
	for i := range m.groups {
		if m.groups[i].Post.ID != post.ID {
			continue
		}
		m.groups[i].Post = post
		m.groups[i].Replies = append([]domain.Post(nil), replies...)
		return
	}
}

// selectedDetailPost returns the post under the detail cursor: the root at
// 0, replies after it.
func (m Model) selectedDetailPost() domain.Post {
	if m.detailCursor > 0 && m.detailCursor <= len(m.detailReplies) {
		return m.detailReplies[m.detailCursor-1]
	}
	return m.detailPost
}

func (m *Model) ensureDetailCursorVisible() {
	if m.detailCursor < 0 {
		m.detailCursor = 0
	}
	if m.detailCursor > len(m.detailReplies) {
		m.detailCursor = len(m.detailReplies)
	}
	if m.detailStart > m.detailCursor {
		m.detailStart = m.detailCursor
	}
	if m.height <= 0 {
		return
	}
	avail := m.feedViewportHeight()
	for m.detailStart < m.detailCursor {
		used := 0
		for i := m.detailStart; i <= m.detailCursor; i++ {
			used += lipgloss.Height(m.renderDetailItem(i))
		}
		if used <= avail {
			break
		}
		m.detailStart++
	}
}
