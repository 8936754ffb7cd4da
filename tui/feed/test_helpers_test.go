package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/tui/toast"
)

var errBoom = errors.New("boom")

type stubFeed struct {
	mu    sync.Mutex
	pages map[int][]domain.Post
	errs  map[int]error
	calls []int
}

func (s *stubFeed) FetchPage(_ context.Context, page int) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, page)
	if err := s.errs[page]; err != nil {
		return nil, err
	}
	return s.pages[page], nil
}

type likeCall struct {
	id   int64
	like bool
}

type stubPosts struct {
	mu      sync.Mutex
	likeErr error
	likes   []likeCall
	post    domain.Post
	replies []domain.Post
	getErr  error
}

func (s *stubPosts) Create(_ context.Context, message string) (domain.Post, error) {
	return domain.Post{ID: 999, Message: message, Author: "me"}, nil
}

func (s *stubPosts) Get(context.Context, int64) (domain.Post, error) {
	return s.post, s.getErr
}

func (s *stubPosts) Like(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes = append(s.likes, likeCall{id: id, like: true})
	return s.likeErr
}

func (s *stubPosts) Unlike(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes = append(s.likes, likeCall{id: id, like: false})
	return s.likeErr
}

func (s *stubPosts) Replies(context.Context, int64) ([]domain.Post, error) {
	return s.replies, nil
}

func (s *stubPosts) Reply(_ context.Context, parentID int64, message string) (domain.Post, error) {
	return domain.Post{ID: 1000, ParentID: parentID, Message: message, Author: "me"}, nil
}

type memFavorites struct {
	byEmail map[string][]domain.Favorite
}

func newMemFavorites() *memFavorites {
	return &memFavorites{byEmail: map[string][]domain.Favorite{}}
}

func (f *memFavorites) IsFavorite(email, author string) (bool, error) {
	for _, fav := range f.byEmail[email] {
		if fav.Author == author {
			return true, nil
		}
	}
	return false, nil
}

func (f *memFavorites) AddFavorite(email string, fav domain.Favorite) (bool, error) {
	if ok, _ := f.IsFavorite(email, fav.Author); ok {
		return false, nil
	}
	f.byEmail[email] = append(f.byEmail[email], fav)
	return true, nil
}

func (f *memFavorites) RemoveFavorite(email, author string) error {
	kept := f.byEmail[email][:0]
	for _, fav := range f.byEmail[email] {
		if fav.Author != author {
			kept = append(kept, fav)
		}
	}
	f.byEmail[email] = kept
	return nil
}

func (f *memFavorites) Favorites(email string) ([]domain.Favorite, error) {
	return append([]domain.Favorite(nil), f.byEmail[email]...), nil
}

// makePosts builds n top-level posts with ids starting at first.
func makePosts(first int64, n int) []domain.Post {
	posts := make([]domain.Post, 0, n)
	for i := 0; i < n; i++ {
		id := first + int64(i)
		posts = append(posts, domain.Post{
			ID:        id,
			Message:   fmt.Sprintf("tuit %d", id),
			Author:    fmt.Sprintf("user%d", id),
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		})
	}
	return posts
}

func newTestModel(feed *stubFeed, posts *stubPosts) Model {
	if feed == nil {
		feed = &stubFeed{}
	}
	if posts == nil {
		posts = &stubPosts{}
	}
	m := New(feed, posts, newMemFavorites(), "me@example.com")
	m.width = 100
	m.height = 40
	return m
}

// loaded returns a model whose initial load already applied posts.
func loaded(t *testing.T, feed *stubFeed, posts *stubPosts, initial []domain.Post) Model {
	t.Helper()
	m := newTestModel(feed, posts)
	m, _ = m.Update(PageLoadedMsg{Kind: LoadInitial, Page: 1, Posts: initial, ReqSeq: m.feedReqSeq})
	return m
}

// run executes cmd and feeds every resulting message back into the model,
// returning the toasts that were raised.
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, []toast.ShowMsg) {
	t.Helper()
	var toasts []toast.ShowMsg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg:
		case toast.ShowMsg:
			toasts = append(toasts, msg)
		default:
			var next tea.Cmd
			m, next = m.Update(msg)
			queue = append(queue, next)
		}
	}
	return m, toasts
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends one key to the model.
func press(m Model, s string) (Model, tea.Cmd) {
	return m.Update(keyPress(s))
}
