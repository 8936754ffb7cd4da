package app

import "github.com/tuiter-app/tuiter/domain"

// DraftStore keeps one unsent message per user.
// An empty email selects the shared default slot.
type DraftStore interface {
	LoadDraft(email string) (string, bool, error)
	SaveDraft(email, message string) error
	ClearDraft(email string) error
}

// FavoriteStore keeps bookmarked authors per user.
type FavoriteStore interface {
	IsFavorite(email, author string) (bool, error)
	// AddFavorite reports false when the author was already present.
	AddFavorite(email string, fav domain.Favorite) (bool, error)
	RemoveFavorite(email, author string) error
	Favorites(email string) ([]domain.Favorite, error)
}
