package feed

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/infra/logging"
	"github.com/tuiter-app/tuiter/tui/toast"
)

// AddFavorite bookmarks the author of p for the current user.
func (m Model) AddFavorite(p domain.Post) (Model, tea.Cmd) {
	if m.favorites == nil || strings.TrimSpace(p.Author) == "" {
		return m, nil
	}
	added, err := m.favorites.AddFavorite(m.userEmail, domain.Favorite{Author: p.Author, Avatar: p.Avatar})
	if err != nil {
		logging.Error.Printf("adding favorite %q: %v", p.Author, err)
		return m, toast.Error("Could not save the favorite.")
	}
	if !added {
		return m, toast.Info("@" + p.Author + " is already a favorite.")
	}
	m.reloadFavorites()
	return m, toast.Success("@" + p.Author + " added to favorites.")
}

func (m Model) removeSelectedFavorite() (Model, tea.Cmd) {
	if m.favorites == nil || m.favCursor < 0 || m.favCursor >= len(m.favoriteList) {
		return m, nil
	}
	author := m.favoriteList[m.favCursor].Author
	if err := m.favorites.RemoveFavorite(m.userEmail, author); err != nil {
		logging.Error.Printf("removing favorite %q: %v", author, err)
		return m, toast.Error("Could not remove the favorite.")
	}
	m.reloadFavorites()
	return m, toast.Info("@" + author + " removed from favorites.")
}

// Favorites returns the bookmarked authors in the order they were added.
func (m Model) Favorites() []domain.Favorite {
	return m.favoriteList
}

// IsFavorite reports whether author is bookmarked.
func (m Model) IsFavorite(author string) bool {
	return m.favoriteSet[author]
}
