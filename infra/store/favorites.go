package store

import (
	"fmt"
	"strings"

	"github.com/tuiter-app/tuiter/domain"
)

// IsFavorite reports whether author is bookmarked for email.
func (d *DB) IsFavorite(email, author string) (bool, error) {
	var n int
	err := d.sql.QueryRow(`SELECT COUNT(1) FROM favorites WHERE scope = ? AND author = ?`,
		scopedKey("favorites", email), strings.TrimSpace(author)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return n > 0, nil
}

// AddFavorite bookmarks an author. It returns false, without error, when the
// author is already present.
func (d *DB) AddFavorite(email string, fav domain.Favorite) (bool, error) {
	author := strings.TrimSpace(fav.Author)
	if author == "" {
		return false, fmt.Errorf("favorite author is empty")
	}
	res, err := d.sql.Exec(`INSERT OR IGNORE INTO favorites(scope, author, avatar) VALUES(?, ?, ?)`,
		scopedKey("favorites", email), author, strings.TrimSpace(fav.Avatar))
	if err != nil {
		return false, fmt.Errorf("adding favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("adding favorite: %w", err)
	}
	return n > 0, nil
}

// RemoveFavorite drops an author from the bookmarks.
func (d *DB) RemoveFavorite(email, author string) error {
	_, err := d.sql.Exec(`DELETE FROM favorites WHERE scope = ? AND author = ?`,
		scopedKey("favorites", email), strings.TrimSpace(author))
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

// Favorites lists bookmarked authors in insertion order.
func (d *DB) Favorites(email string) ([]domain.Favorite, error) {
	rows, err := d.sql.Query(`SELECT author, avatar FROM favorites WHERE scope = ? ORDER BY id`,
		scopedKey("favorites", email))
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var out []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.Author, &f.Avatar); err != nil {
			return nil, fmt.Errorf("listing favorites: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
