package app

import (
	"context"

	"github.com/tuiter-app/tuiter/domain"
)

// PostService publishes, reads, and likes tuits.
type PostService interface {
	// Create publishes a new top-level tuit.
	Create(ctx context.Context, message string) (domain.Post, error)

	// Get fetches a single tuit by ID.
	Get(ctx context.Context, id int64) (domain.Post, error)

	// Like marks a tuit as liked by the current user.
	Like(ctx context.Context, id int64) error

	// Unlike removes the current user's like.
	Unlike(ctx context.Context, id int64) error

	// Replies lists direct replies to a tuit.
	Replies(ctx context.Context, id int64) ([]domain.Post, error)

	// Reply publishes a reply to the tuit with the given ID.
	Reply(ctx context.Context, parentID int64, message string) (domain.Post, error)
}
