package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuiter-app/tuiter/app"
	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/infra/logging"
	"github.com/tuiter-app/tuiter/tui/common"
)

// Model holds the state for the feed view: pagination, likes, the thread
// detail view and the favorites panel.
type Model struct {
	modelServices
	feedState
	uiState
	detailState
	favoritesState
}

// New creates a feed model with injected dependencies.
// userEmail scopes favorites; it may be empty.
func New(feed app.FeedService, posts app.PostService, favorites app.FavoriteStore, userEmail string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#1DA1F2"))

	m := Model{
		modelServices: modelServices{
			feed:      feed,
			posts:     posts,
			favorites: favorites,
			userEmail: userEmail,
		},
		feedState: feedState{
			page:        1,
			hasMore:     true,
			loading:     true,
			likePending: make(map[int64]bool),
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
		favoritesState: favoritesState{
			favoriteSet: make(map[string]bool),
		},
	}
	m.reloadFavorites()
	return m
}

// Init starts the initial feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPage(LoadInitial, 1, m.feedReqSeq),
		m.spinner.Tick,
	)
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

func (m *Model) reloadFavorites() {
	if m.favorites == nil {
		return
	}
	favs, err := m.favorites.Favorites(m.userEmail)
	if err != nil {
		logging.Error.Printf("loading favorites: %v", err)
		return
	}
	m.favoriteList = favs
	m.favoriteSet = make(map[string]bool, len(favs))
	for _, f := range favs {
		m.favoriteSet[f.Author] = true
	}
	if m.favCursor >= len(m.favoriteList) {
		m.favCursor = max(0, len(m.favoriteList)-1)
	}
}

// Groups returns the current post groups.
func (m Model) Groups() []domain.PostGroup {
	return m.groups
}

// Page returns the last successfully loaded page number.
func (m Model) Page() int {
	return m.page
}

// HasMore reports whether older pages may exist.
func (m Model) HasMore() bool {
	return m.hasMore
}

// Loading reports whether any feed request is in flight.
func (m Model) Loading() bool {
	return m.loading || m.refreshing || m.loadingMore
}

// Err returns the inline error of a failed initial load, if any.
func (m Model) Err() string {
	return m.err
}

// Notice returns the empty-feed notice, if any.
func (m Model) Notice() string {
	return m.notice
}

// Cursor returns the selected group index.
func (m Model) Cursor() int {
	return m.cursor
}

// SelectedGroup returns the highlighted group, if any.
func (m Model) SelectedGroup() (domain.PostGroup, bool) {
	if len(m.groups) == 0 || m.cursor < 0 || m.cursor >= len(m.groups) {
		return domain.PostGroup{}, false
	}
	return m.groups[m.cursor], true
}

// IsInOverlay reports whether a sub-view (thread, favorites, hints) has
// focus, so the root should not treat q as quit.
func (m Model) IsInOverlay() bool {
	return m.showDetail || m.showFavorites || m.showAllHints
}
