package api

import (
	"context"
	"fmt"

	"github.com/tuiter-app/tuiter/domain"
)

// feedService implements app.FeedService.
type feedService struct {
	client *Client
}

// NewFeedService creates a FeedService backed by the API.
func NewFeedService(client *Client) *feedService {
	return &feedService{client: client}
}

func (s *feedService) FetchPage(ctx context.Context, page int) ([]domain.Post, error) {
	if page < 1 {
		page = 1
	}
	data, err := s.client.Get(ctx, fmt.Sprintf("/me/feed?page=%d", page))
	if err != nil {
		return nil, fmt.Errorf("fetching feed page %d: %w", page, err)
	}
	return parsePosts(data)
}
