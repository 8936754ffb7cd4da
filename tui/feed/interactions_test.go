package feed

import (
	"testing"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/tui/toast"
)

func likedFixture() []domain.Post {
	return []domain.Post{
		{ID: 1, Author: "ana", Message: "root", Likes: 5},
		{ID: 2, Author: "bo", Message: "reply", ParentID: 1, Likes: 2, Liked: true},
		{ID: 3, Author: "cy", Message: "other"},
	}
}

func TestToggleLike_LikeThenUnlike(t *testing.T) {
	posts := &stubPosts{}
	m := loaded(t, nil, posts, likedFixture())

	m, cmd := m.ToggleLike(1)
	if cmd == nil {
		t.Fatalf("expected like request")
	}
	m, _ = run(t, m, cmd)
	if p := m.Groups()[0].Post; p.Likes != 6 || !p.Liked {
		t.Fatalf("after like: likes=%d liked=%v, want 6/true", p.Likes, p.Liked)
	}

	m, cmd = m.ToggleLike(1)
	m, _ = run(t, m, cmd)
	if p := m.Groups()[0].Post; p.Likes != 5 || p.Liked {
		t.Fatalf("after unlike: likes=%d liked=%v, want 5/false", p.Likes, p.Liked)
	}

	want := []likeCall{{id: 1, like: true}, {id: 1, like: false}}
	if len(posts.likes) != len(want) {
		t.Fatalf("calls = %v, want %v", posts.likes, want)
	}
	for i := range want {
		if posts.likes[i] != want[i] {
			t.Fatalf("call %d = %v, want %v", i, posts.likes[i], want[i])
		}
	}
}

func TestToggleLike_Reply(t *testing.T) {
	posts := &stubPosts{}
	m := loaded(t, nil, posts, likedFixture())

	m, cmd := m.ToggleLike(2)
	m, _ = run(t, m, cmd)

	r := m.Groups()[0].Replies[0]
	if r.Likes != 1 || r.Liked {
		t.Fatalf("reply after unlike: likes=%d liked=%v, want 1/false", r.Likes, r.Liked)
	}
	if len(posts.likes) != 1 || posts.likes[0].like {
		t.Fatalf("expected one unlike call, got %v", posts.likes)
	}
	if m.Groups()[0].Post.Likes != 5 {
		t.Fatalf("parent must not change")
	}
}

func TestToggleLike_UnknownIDSendsNothing(t *testing.T) {
	posts := &stubPosts{}
	m := loaded(t, nil, posts, likedFixture())
	before := m.Groups()[0].Post

	m, cmd := m.ToggleLike(404)
	if cmd != nil {
		t.Fatalf("expected no request for an unknown id")
	}
	if len(posts.likes) != 0 {
		t.Fatalf("unexpected calls %v", posts.likes)
	}
	if m.Groups()[0].Post != before {
		t.Fatalf("state changed for unknown id")
	}
}

func TestToggleLike_FailureLeavesStateUntouched(t *testing.T) {
	posts := &stubPosts{likeErr: errBoom}
	m := loaded(t, nil, posts, likedFixture())

	m, cmd := m.ToggleLike(1)
	m, toasts := run(t, m, cmd)

	if p := m.Groups()[0].Post; p.Likes != 5 || p.Liked {
		t.Fatalf("failed like mutated state: likes=%d liked=%v", p.Likes, p.Liked)
	}
	if len(toasts) != 1 || toasts[0].Kind != toast.KindError {
		t.Fatalf("expected an error toast, got %v", toasts)
	}
	if m.LikePending(1) {
		t.Fatalf("pending flag should be cleared after failure")
	}
}

func TestToggleLike_SecondToggleDroppedWhilePending(t *testing.T) {
	posts := &stubPosts{}
	m := loaded(t, nil, posts, likedFixture())

	m, first := m.ToggleLike(1)
	m, second := m.ToggleLike(1)
	if second != nil {
		t.Fatalf("expected the second toggle to be dropped")
	}
	m, _ = run(t, m, first)

	if p := m.Groups()[0].Post; p.Likes != 6 || !p.Liked {
		t.Fatalf("likes=%d liked=%v, want 6/true", p.Likes, p.Liked)
	}
	if len(posts.likes) != 1 {
		t.Fatalf("calls = %v, want exactly one", posts.likes)
	}
}

func TestLikeResult_NoDoubleCountWhenAlreadyApplied(t *testing.T) {
	m := loaded(t, nil, nil, likedFixture())

	m, _ = m.Update(LikeResultMsg{ID: 2, Liked: true})

	if r := m.Groups()[0].Replies[0]; r.Likes != 2 {
		t.Fatalf("likes = %d, want 2", r.Likes)
	}
}

func TestPostCreated_PrependsGroup(t *testing.T) {
	m := loaded(t, nil, nil, likedFixture())

	m, _ = m.Update(PostCreatedMsg{Post: domain.Post{ID: 50, Message: "new"}})

	if m.Groups()[0].Post.ID != 50 || m.Cursor() != 0 {
		t.Fatalf("new tuit should be first and selected")
	}
}

func TestReplyCreated_AppendsToGroup(t *testing.T) {
	m := loaded(t, nil, nil, likedFixture())

	m, _ = m.Update(ReplyCreatedMsg{Reply: domain.Post{ID: 60, ParentID: 1, Message: "me too"}})

	g := m.Groups()[0]
	if len(g.Replies) != 2 || g.Replies[1].ID != 60 {
		t.Fatalf("reply not appended: %+v", g.Replies)
	}
	if g.Post.Replies != 1 {
		t.Fatalf("reply count = %d, want 1", g.Post.Replies)
	}
}

func TestFavoriteKey_AddsOnceAndLists(t *testing.T) {
	m := loaded(t, nil, nil, likedFixture())

	m, cmd := press(m, "f")
	_, toasts := run(t, m, cmd)
	if len(toasts) != 1 || toasts[0].Kind != toast.KindSuccess {
		t.Fatalf("expected success toast, got %v", toasts)
	}
	if !m.IsFavorite("ana") {
		t.Fatalf("ana should be a favorite")
	}

	m, cmd = press(m, "f")
	_, toasts = run(t, m, cmd)
	if len(toasts) != 1 || toasts[0].Kind != toast.KindInfo {
		t.Fatalf("expected already-favorite toast, got %v", toasts)
	}
	if len(m.Favorites()) != 1 {
		t.Fatalf("favorites = %v, want one entry", m.Favorites())
	}

	m, _ = press(m, "F")
	if !m.IsInOverlay() {
		t.Fatalf("favorites panel should be open")
	}
	m, _ = press(m, "d")
	if len(m.Favorites()) != 0 || m.IsFavorite("ana") {
		t.Fatalf("favorite should be removed, got %v", m.Favorites())
	}
	m, _ = press(m, "esc")
	if m.IsInOverlay() {
		t.Fatalf("favorites panel should be closed")
	}
}
