package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/tui/compose"
	"github.com/tuiter-app/tuiter/tui/feed"
	"github.com/tuiter-app/tuiter/tui/profile"
	"github.com/tuiter-app/tuiter/tui/toast"
)

type stubFeed struct{}

func (stubFeed) FetchPage(context.Context, int) ([]domain.Post, error) { return nil, nil }

type stubPosts struct {
	createErr error
	created   []string
	replied   []int64
}

func (s *stubPosts) Create(_ context.Context, message string) (domain.Post, error) {
	s.created = append(s.created, message)
	if s.createErr != nil {
		return domain.Post{}, s.createErr
	}
	return domain.Post{ID: 100, Message: message, Author: "me"}, nil
}

func (s *stubPosts) Get(context.Context, int64) (domain.Post, error) { return domain.Post{}, nil }
func (s *stubPosts) Like(context.Context, int64) error               { return nil }
func (s *stubPosts) Unlike(context.Context, int64) error             { return nil }

func (s *stubPosts) Replies(context.Context, int64) ([]domain.Post, error) { return nil, nil }

func (s *stubPosts) Reply(_ context.Context, parentID int64, message string) (domain.Post, error) {
	s.replied = append(s.replied, parentID)
	return domain.Post{ID: 101, ParentID: parentID, Message: message}, nil
}

type stubAccount struct{}

func (stubAccount) Register(context.Context, domain.Credentials) error    { return nil }
func (stubAccount) Login(context.Context, string, string) (string, error) { return "", nil }
func (stubAccount) Profile(context.Context) (domain.Profile, error) {
	return domain.Profile{Name: "Me"}, nil
}
func (stubAccount) UpdateProfile(context.Context, domain.ProfileUpdate) (domain.Profile, error) {
	return domain.Profile{}, nil
}

type memDrafts map[string]string

func (d memDrafts) LoadDraft(email string) (string, bool, error) {
	v, ok := d[email]
	return v, ok, nil
}
func (d memDrafts) SaveDraft(email, message string) error { d[email] = message; return nil }
func (d memDrafts) ClearDraft(email string) error         { delete(d, email); return nil }

type noFavorites struct{}

func (noFavorites) IsFavorite(string, string) (bool, error)           { return false, nil }
func (noFavorites) AddFavorite(string, domain.Favorite) (bool, error) { return true, nil }
func (noFavorites) RemoveFavorite(string, string) error               { return nil }
func (noFavorites) Favorites(string) ([]domain.Favorite, error)       { return nil, nil }

func newTestApp(posts *stubPosts, drafts memDrafts) App {
	a := NewApp(Deps{
		Feed:      stubFeed{},
		Posts:     posts,
		Account:   stubAccount{},
		Drafts:    drafts,
		Favorites: noFavorites{},
		UserEmail: "me@example.com",
	})
	a = step(a, feed.PageLoadedMsg{
		Kind:  feed.LoadInitial,
		Page:  1,
		Posts: []domain.Post{{ID: 1, Author: "ana", Message: "hi"}},
	})
	return a
}

func step(a App, msg tea.Msg) App {
	next, _ := a.Update(msg)
	return next.(App)
}

func stepCmd(a App, msg tea.Msg) (App, tea.Cmd) {
	next, cmd := a.Update(msg)
	return next.(App), cmd
}

func TestQuit_OnlyFromPlainFeed(t *testing.T) {
	a := newTestApp(&stubPosts{}, memDrafts{})

	a, cmd := stepCmd(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("F")})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatalf("F should not quit")
		}
	}
	_, cmd = stepCmd(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatalf("q inside the favorites panel should close it, not quit")
		}
	}

	b := newTestApp(&stubPosts{}, memDrafts{})
	_, cmd = stepCmd(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestPublish_PostPrependsAndClearsDraft(t *testing.T) {
	posts := &stubPosts{}
	drafts := memDrafts{"me@example.com": "old draft"}
	a := newTestApp(posts, drafts)

	a = step(a, feed.ComposeMsg{UseInline: true})
	if a.active != composeView {
		t.Fatalf("compose view should be active")
	}

	a, cmd := stepCmd(a, compose.DoneMsg{Content: "brand new"})
	if a.active != feedView || cmd == nil {
		t.Fatalf("expected publish command and feed view")
	}
	a = step(a, cmd())

	if len(posts.created) != 1 || posts.created[0] != "brand new" {
		t.Fatalf("created = %v", posts.created)
	}
	if g := a.feed.Groups(); len(g) != 2 || g[0].Post.ID != 100 {
		t.Fatalf("new tuit not prepended: %+v", g)
	}
	if _, ok := drafts["me@example.com"]; ok {
		t.Fatalf("draft should be cleared after publishing")
	}
}

func TestPublish_FailureKeepsDraft(t *testing.T) {
	posts := &stubPosts{createErr: errors.New("offline")}
	drafts := memDrafts{}
	a := newTestApp(posts, drafts)

	_, cmd := stepCmd(a, compose.DoneMsg{Content: "keep me"})
	a, cmd = stepCmd(a, cmd())

	if drafts["me@example.com"] != "keep me" {
		t.Fatalf("draft = %q", drafts["me@example.com"])
	}
	if len(a.feed.Groups()) != 1 {
		t.Fatalf("feed should not change on failure")
	}
	a = step(a, cmd())
	if !strings.Contains(a.View(), "draft") {
		t.Fatalf("expected the failure toast in the view")
	}
}

func TestPublish_ReplyAppendsToGroup(t *testing.T) {
	posts := &stubPosts{}
	a := newTestApp(posts, memDrafts{})

	parent := domain.Post{ID: 1, Author: "ana"}
	_, cmd := stepCmd(a, compose.DoneMsg{Content: "hey", Parent: &parent})
	a = step(a, cmd())

	if len(posts.replied) != 1 || posts.replied[0] != 1 {
		t.Fatalf("replied = %v", posts.replied)
	}
	g := a.feed.Groups()[0]
	if len(g.Replies) != 1 || g.Replies[0].ID != 101 || g.Post.Replies != 1 {
		t.Fatalf("reply not applied: %+v", g)
	}
}

func TestCancelledCompose(t *testing.T) {
	posts := &stubPosts{}
	a := newTestApp(posts, memDrafts{})
	a = step(a, feed.ComposeMsg{UseInline: true})

	a, cmd := stepCmd(a, compose.DoneMsg{})
	a = step(a, cmd())
	if len(posts.created) != 0 {
		t.Fatalf("cancel must not publish")
	}
	if !strings.Contains(a.View(), "Cancelled.") {
		t.Fatalf("expected cancel toast")
	}
}

func TestProfileRouting(t *testing.T) {
	a := newTestApp(&stubPosts{}, memDrafts{})

	a = step(a, feed.OpenProfileMsg{})
	if a.active != profileView {
		t.Fatalf("profile view should be active")
	}
	a = step(a, profile.DoneMsg{})
	if a.active != feedView {
		t.Fatalf("feed view should be active again")
	}
}

func TestTooLongReply_ReopensEditorWithText(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("EDITOR", "true")
	drafts := memDrafts{}
	a := newTestApp(&stubPosts{}, drafts)

	parent := domain.Post{ID: 7, Author: "ana"}
	long := strings.Repeat("y", 300)
	a, cmd := stepCmd(a, compose.DoneMsg{
		Content: long,
		Parent:  &parent,
		Err:     fmt.Errorf("300 characters: %w", domain.ErrPostTooLong),
	})

	if a.active != composeView {
		t.Fatalf("composer should reopen")
	}
	if a.compose.Value() != long || !a.compose.IsReply() {
		t.Fatalf("reply text not handed back: %q", a.compose.Value())
	}
	if len(drafts) != 0 {
		t.Fatalf("reply must not be stored as a draft, got %v", drafts)
	}

	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch of toast and editor commands")
	}
	var shown *toast.ShowMsg
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(toast.ShowMsg); ok {
			shown = &msg
		}
	}
	if shown == nil || shown.Kind != toast.KindError {
		t.Fatalf("expected an error toast")
	}
	if strings.Contains(shown.Text, "draft") {
		t.Fatalf("toast must not claim a draft was kept: %q", shown.Text)
	}
}
