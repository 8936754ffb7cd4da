package api

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tuiter-app/tuiter/domain"
)

// postService implements app.PostService.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the API.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

type messageBody struct {
	Message string `json:"message"`
}

func checkMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", domain.ErrEmptyPost
	}
	if utf8.RuneCountInString(message) > domain.MaxMessageLength {
		return "", domain.ErrPostTooLong
	}
	return message, nil
}

func (s *postService) Create(ctx context.Context, message string) (domain.Post, error) {
	message, err := checkMessage(message)
	if err != nil {
		return domain.Post{}, err
	}
	data, err := s.client.Post(ctx, "/me/tuits", messageBody{Message: message})
	if err != nil {
		return domain.Post{}, fmt.Errorf("posting tuit: %w", err)
	}
	return parsePost(data)
}

func (s *postService) Get(ctx context.Context, id int64) (domain.Post, error) {
	data, err := s.client.Get(ctx, fmt.Sprintf("/me/tuits/%d", id))
	if err != nil {
		return domain.Post{}, fmt.Errorf("fetching tuit %d: %w", id, err)
	}
	return parsePost(data)
}

func (s *postService) Like(ctx context.Context, id int64) error {
	if _, err := s.client.Post(ctx, fmt.Sprintf("/me/tuits/%d/likes", id), nil); err != nil {
		return fmt.Errorf("liking tuit %d: %w", id, err)
	}
	return nil
}

func (s *postService) Unlike(ctx context.Context, id int64) error {
	if _, err := s.client.Delete(ctx, fmt.Sprintf("/me/tuits/%d/likes", id)); err != nil {
		return fmt.Errorf("unliking tuit %d: %w", id, err)
	}
	return nil
}

func (s *postService) Replies(ctx context.Context, id int64) ([]domain.Post, error) {
	data, err := s.client.Get(ctx, fmt.Sprintf("/me/tuits/%d/replies", id))
	if err != nil {
		return nil, fmt.Errorf("fetching replies of %d: %w", id, err)
	}
	return parsePosts(data)
}

func (s *postService) Reply(ctx context.Context, parentID int64, message string) (domain.Post, error) {
	message, err := checkMessage(message)
	if err != nil {
		return domain.Post{}, err
	}
	data, err := s.client.Post(ctx, fmt.Sprintf("/me/tuits/%d/replies", parentID), messageBody{Message: message})
	if err != nil {
		return domain.Post{}, fmt.Errorf("replying to tuit %d: %w", parentID, err)
	}
	reply, err := parsePost(data)
	if err != nil {
		return domain.Post{}, err
	}
	if reply.ParentID == 0 {
		reply.ParentID = parentID
	}
	return reply, nil
}
