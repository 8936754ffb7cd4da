package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/tuiter-app/tuiter/domain"
)

// tuitRecord is the JSON shape of a post on the wire.
type tuitRecord struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Author    string `json:"author"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"created_at"`
	Likes     int    `json:"likes"`
	Liked     bool   `json:"liked"`
	ParentID  *int64 `json:"parent_id"`
	Replies   int    `json:"replies"`
}

type profileRecord struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func (r tuitRecord) toPost() domain.Post {
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)
	var parent int64
	if r.ParentID != nil {
		parent = *r.ParentID
	}
	likes := r.Likes
	if likes < 0 {
		likes = 0
	}
	return domain.Post{
		ID:        r.ID,
		Message:   sanitizeForTerminal(r.Message),
		Author:    sanitizeForTerminal(r.Author),
		Avatar:    sanitizeForTerminal(r.Avatar),
		CreatedAt: createdAt,
		Likes:     likes,
		Liked:     r.Liked,
		ParentID:  parent,
		Replies:   r.Replies,
	}
}

func (r profileRecord) toProfile() domain.Profile {
	return domain.Profile{
		Name:   sanitizeForTerminal(r.Name),
		Email:  strings.TrimSpace(r.Email),
		Avatar: sanitizeForTerminal(r.Avatar),
	}
}

func parsePost(data []byte) (domain.Post, error) {
	var rec tuitRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Post{}, fmt.Errorf("parsing tuit: %w", err)
	}
	return rec.toPost(), nil
}

func parsePosts(data []byte) ([]domain.Post, error) {
	var recs []tuitRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parsing tuits: %w", err)
	}
	posts := make([]domain.Post, 0, len(recs))
	for _, rec := range recs {
		posts = append(posts, rec.toPost())
	}
	return posts, nil
}

// sanitizeForTerminal strips escape sequences and control characters so
// server-provided text cannot drive the terminal. Newlines and tabs survive.
func sanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		case r >= 0x80 && r < 0xa0:
			return -1
		}
		return r
	}, s)
}
