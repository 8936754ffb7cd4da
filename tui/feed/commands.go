package feed

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/domain"
)

func (m Model) fetchPage(kind LoadKind, page, reqSeq int) tea.Cmd {
	feed := m.feed
	return func() tea.Msg {
		posts, err := feed.FetchPage(context.Background(), page)
		if err != nil {
			return PageErrorMsg{Kind: kind, Page: page, Err: err, ReqSeq: reqSeq}
		}
		return PageLoadedMsg{Kind: kind, Page: page, Posts: posts, ReqSeq: reqSeq}
	}
}

func (m Model) sendLike(id int64, like bool) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		var err error
		if like {
			err = posts.Like(context.Background(), id)
		} else {
			err = posts.Unlike(context.Background(), id)
		}
		return LikeResultMsg{ID: id, Liked: like, Err: err}
	}
}

func (m Model) fetchThread(id int64) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		var (
			post    domain.Post
			replies []domain.Post
			perr    error
			rerr    error
		)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			post, perr = posts.Get(context.Background(), id)
		}()
		go func() {
			defer wg.Done()
			replies, rerr = posts.Replies(context.Background(), id)
		}()
		wg.Wait()
		if perr != nil {
			return ThreadErrorMsg{ID: id, Err: perr}
		}
		if rerr != nil {
			return ThreadErrorMsg{ID: id, Err: rerr}
		}
		return ThreadLoadedMsg{ID: id, Post: post, Replies: replies}
	}
}

func compose(parent *domain.Post, inline bool) tea.Cmd {
	return func() tea.Msg { return ComposeMsg{Parent: parent, UseInline: inline} }
}

func openProfile() tea.Msg { return OpenProfileMsg{} }
