package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/infra/logging"
	"github.com/tuiter-app/tuiter/infra/metrics"
	"github.com/tuiter-app/tuiter/tui/toast"
)

// ToggleLike sends a like or unlike for the post with id, depending on its
// current state. State only changes once the server confirms. Unknown ids
// and ids with a request already in flight are ignored.
func (m Model) ToggleLike(id int64) (Model, tea.Cmd) {
	p, ok := m.findPost(id)
	if !ok {
		logging.Error.Printf("toggle like: tuit %d not found in feed", id)
		metrics.IncLikeToggle("unknown")
		return m, nil
	}
	if m.likePending[id] {
		metrics.IncLikeToggle("busy")
		return m, nil
	}
	m.likePending[id] = true
	return m, m.sendLike(id, !p.Liked)
}

// LikePending reports whether a like request for id is in flight.
func (m Model) LikePending(id int64) bool {
	return m.likePending[id]
}

func (m Model) handleInteractionMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LikeResultMsg:
		delete(m.likePending, msg.ID)
		if msg.Err != nil {
			logging.Error.Printf("toggle like on tuit %d: %v", msg.ID, msg.Err)
			metrics.IncLikeToggle("error")
			if msg.Liked {
				return m, toast.Error("Could not like the tuit.")
			}
			return m, toast.Error("Could not remove your like.")
		}
		m.applyLike(msg.ID, msg.Liked)
		metrics.IncLikeToggle("ok")
		return m, nil

	case PostCreatedMsg:
		g := domain.PostGroup{Post: msg.Post}
		m.groups = append([]domain.PostGroup{g}, m.groups...)
		m.notice = ""
		m.err = ""
		m.cursor = 0
		m.startIndex = 0
		m.ensureFeedCursorVisible()
		return m, toast.Success("Tuit published.")

	case ReplyCreatedMsg:
		m.addReply(msg.Reply)
		return m, toast.Success("Reply published.")
	}
	return m, nil
}

func (m *Model) addReply(r domain.Post) {
	for i := range m.groups {
		if m.groups[i].Post.ID != r.ParentID {
			continue
		}
		replies := make([]domain.Post, 0, len(m.groups[i].Replies)+1)
		replies = append(replies, m.groups[i].Replies...)
		m.groups[i].Replies = append(replies, r)
		m.groups[i].Post.Replies++
		break
	}
	if m.showDetail && m.detailPost.ID == r.ParentID {
		m.detailReplies = append(m.detailReplies, r)
		m.detailPost.Replies++
	}
}
