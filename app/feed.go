package app

import (
	"context"

	"github.com/tuiter-app/tuiter/domain"
)

// FeedService fetches the authenticated user's feed.
type FeedService interface {
	// FetchPage returns one page of posts, top-level posts and replies mixed.
	// Pages start at 1.
	FetchPage(ctx context.Context, page int) ([]domain.Post, error)
}
