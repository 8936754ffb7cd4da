package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showAllHints {
		if key.Matches(msg, m.keys.ToggleHints, m.keys.Back, m.keys.Quit, m.keys.Enter) {
			m.showAllHints = false
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.ToggleHints) {
		m.showAllHints = true
		return m, nil
	}
	if m.showFavorites {
		return m.handleFavoritesKey(msg)
	}
	if m.showDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleFeedKey(msg)
}

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back, m.keys.Favorites, m.keys.Quit):
		m.showFavorites = false
	case key.Matches(msg, m.keys.Up):
		if m.favCursor > 0 {
			m.favCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.favCursor < len(m.favoriteList)-1 {
			m.favCursor++
		}
	case key.Matches(msg, m.keys.Remove):
		return m.removeSelectedFavorite()
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back, m.keys.Quit):
		m.closeDetail()
		m.ensureFeedCursorVisible()
	case key.Matches(msg, m.keys.Up):
		m.detailCursor--
		m.ensureDetailCursorVisible()
	case key.Matches(msg, m.keys.Down):
		m.detailCursor++
		m.ensureDetailCursorVisible()
	case key.Matches(msg, m.keys.Top):
		m.detailCursor = 0
		m.detailStart = 0
	case key.Matches(msg, m.keys.Like):
		return m.ToggleLike(m.selectedDetailPost().ID)
	case key.Matches(msg, m.keys.Reply, m.keys.ReplyInline):
		// Replies are one level deep, so they always target the thread root.
		root := m.detailPost
		return m, compose(&root, key.Matches(msg, m.keys.ReplyInline))
	case key.Matches(msg, m.keys.Favorite):
		return m.AddFavorite(m.selectedDetailPost())
	case key.Matches(msg, m.keys.Refresh):
		if m.detailLoading {
			return m, nil
		}
		m.detailLoading = true
		m.detailErr = ""
		return m, m.fetchThread(m.detailID)
	}
	return m, nil
}

func (m Model) handleFeedKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.groups)-1 {
			m.moveCursor(1)
		}
		if m.nearEnd() {
			return m.FetchMore()
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.startIndex = 0
	case key.Matches(msg, m.keys.Enter):
		return m.OpenDetail()
	case key.Matches(msg, m.keys.Like):
		if g, ok := m.SelectedGroup(); ok {
			return m.ToggleLike(g.Post.ID)
		}
	case key.Matches(msg, m.keys.Refresh):
		return m.Refresh()
	case key.Matches(msg, m.keys.NewEditor):
		return m, compose(nil, false)
	case key.Matches(msg, m.keys.NewInline):
		return m, compose(nil, true)
	case key.Matches(msg, m.keys.Reply, m.keys.ReplyInline):
		if g, ok := m.SelectedGroup(); ok {
			parent := g.Post
			return m, compose(&parent, key.Matches(msg, m.keys.ReplyInline))
		}
	case key.Matches(msg, m.keys.Favorite):
		if g, ok := m.SelectedGroup(); ok {
			return m.AddFavorite(g.Post)
		}
	case key.Matches(msg, m.keys.Favorites):
		m.showFavorites = true
		m.reloadFavorites()
	case key.Matches(msg, m.keys.Profile):
		return m, openProfile
	}
	return m, nil
}
