package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/infra/logging"
	"github.com/tuiter-app/tuiter/infra/metrics"
	"github.com/tuiter-app/tuiter/tui/toast"
)

// FetchMore requests the next page. It is a no-op when the feed is exhausted
// or any feed request is already in flight.
func (m Model) FetchMore() (Model, tea.Cmd) {
	if !m.hasMore || m.loading || m.refreshing || m.loadingMore {
		return m, nil
	}
	m.loadingMore = true
	m.pagingNotice = ""
	return m, m.fetchPage(LoadMore, m.page+1, m.feedReqSeq)
}

// Refresh reloads the feed from page 1. It is a no-op while the initial
// load, a page fetch or another refresh is in flight.
func (m Model) Refresh() (Model, tea.Cmd) {
	if m.loading || m.loadingMore || m.refreshing {
		return m, nil
	}
	m.page = 1
	m.hasMore = true
	m.refreshing = true
	m.pagingNotice = ""
	m.feedReqSeq++
	return m, m.fetchPage(LoadRefresh, 1, m.feedReqSeq)
}

func (m Model) handleFeedLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		if msg.ReqSeq != m.feedReqSeq {
			return m, nil
		}
		metrics.IncFeedPage(msg.Kind.String())
		switch msg.Kind {
		case LoadInitial:
			return m.applyInitialPage(msg.Posts)
		case LoadRefresh:
			return m.applyRefreshPage(msg.Posts)
		case LoadMore:
			return m.applyMorePage(msg.Page, msg.Posts)
		}

	case PageErrorMsg:
		if msg.ReqSeq != m.feedReqSeq {
			return m, nil
		}
		logging.Error.Printf("feed %s page %d: %v", msg.Kind, msg.Page, msg.Err)
		switch msg.Kind {
		case LoadInitial:
			m.loading = false
			m.groups = nil
			m.err = "Could not load your feed: " + msg.Err.Error()
			return m, nil
		case LoadRefresh:
			m.refreshing = false
			return m, toast.Error("Refresh failed. Try again in a moment.")
		case LoadMore:
			m.loadingMore = false
			return m, toast.Error("Could not load more tuits.")
		}
	}

	return m, nil
}

func (m Model) applyInitialPage(posts []domain.Post) (Model, tea.Cmd) {
	m.loading = false
	m.err = ""
	m.page = 1
	if len(posts) == 0 {
		m.hasMore = false
		m.groups = nil
		m.notice = noPostsNotice
		return m, nil
	}
	m.notice = ""
	m.groups = domain.GroupPosts(posts)
	m.hasMore = len(posts) >= PageSize
	m.cursor = 0
	m.startIndex = 0
	m.ensureFeedCursorVisible()
	return m, nil
}

func (m Model) applyRefreshPage(posts []domain.Post) (Model, tea.Cmd) {
	m.refreshing = false
	m.err = ""
	m.page = 1
	if len(posts) == 0 {
		m.hasMore = false
		m.groups = nil
		m.cursor = 0
		m.startIndex = 0
		m.notice = noPostsNotice
		return m, toast.Info("No tuits to show.")
	}
	anchor := m.selectedKey()
	m.notice = ""
	m.groups = domain.GroupPosts(posts)
	m.hasMore = len(posts) >= PageSize
	if !m.setCursorByKey(anchor) {
		m.cursor = 0
		m.startIndex = 0
	}
	m.ensureFeedCursorVisible()
	return m, nil
}

func (m Model) applyMorePage(page int, posts []domain.Post) (Model, tea.Cmd) {
	m.loadingMore = false
	if len(posts) == 0 {
		m.hasMore = false
		if len(m.groups) > 0 {
			m.pagingNotice = endOfFeed
		}
		return m, nil
	}

	existing := make(map[int64]struct{}, len(m.groups))
	for _, g := range m.groups {
		existing[g.Key()] = struct{}{}
	}
	for _, g := range domain.GroupPosts(posts) {
		if _, ok := existing[g.Key()]; ok {
			continue
		}
		m.groups = append(m.groups, g)
	}
	if len(posts) < PageSize {
		m.hasMore = false
		m.pagingNotice = endOfFeed
		return m, nil
	}
	m.page = page
	return m, nil
}
