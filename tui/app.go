package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/app"
	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/infra/editor"
	"github.com/tuiter-app/tuiter/infra/logging"
	"github.com/tuiter-app/tuiter/tui/common"
	"github.com/tuiter-app/tuiter/tui/compose"
	"github.com/tuiter-app/tuiter/tui/feed"
	"github.com/tuiter-app/tuiter/tui/profile"
	"github.com/tuiter-app/tuiter/tui/toast"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Feed      app.FeedService
	Posts     app.PostService
	Account   app.AccountService
	Drafts    app.DraftStore
	Favorites app.FavoriteStore
	Editor    *editor.EnvEditor
	UserEmail string
}

type activeView int

const (
	feedView activeView = iota
	composeView
	profileView
)

// publishedMsg carries the outcome of a create or reply request.
type publishedMsg struct {
	content string
	parent  *domain.Post
	post    domain.Post
	err     error
}

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps    Deps
	active  activeView
	feed    feed.Model
	compose compose.Model
	profile profile.Model
	toast   toast.Model
	keys    common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: feedView,
		feed:   feed.New(deps.Feed, deps.Posts, deps.Favorites, deps.UserEmail),
		toast:  toast.New(0),
		keys:   common.DefaultKeyMap(),
	}
}

// Init starts the initial feed load.
func (a App) Init() tea.Cmd {
	return a.feed.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var toastCmd tea.Cmd
	a.toast, toastCmd = a.toast.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active == feedView && key.Matches(msg, a.keys.Quit) && !a.feed.IsInOverlay() {
			return a, tea.Quit
		}
		return a.updateActive(msg)

	case toast.ShowMsg:
		return a, toastCmd

	case feed.ComposeMsg:
		a.active = composeView
		if msg.UseInline {
			a.compose = compose.NewInline(a.deps.Drafts, a.deps.UserEmail, msg.Parent)
		} else {
			a.compose = compose.NewEditor(a.deps.Editor, a.deps.Drafts, a.deps.UserEmail, msg.Parent)
		}
		return a, a.compose.Init()

	case feed.OpenProfileMsg:
		a.active = profileView
		a.profile = profile.New(a.deps.Account)
		return a, a.profile.Init()

	case profile.DoneMsg:
		a.active = feedView
		return a, nil

	case compose.DoneMsg:
		a.active = feedView
		if msg.Err != nil {
			logging.Warn.Printf("compose: %v", msg.Err)
			if errors.Is(msg.Err, domain.ErrPostTooLong) {
				if msg.Parent == nil {
					return a, toast.Error("Tuits are limited to 280 characters. Your text was kept as a draft.")
				}
				// Replies have no draft slot, so hand the text back to the editor.
				a.active = composeView
				a.compose = compose.NewEditorWithText(a.deps.Editor, a.deps.Drafts, a.deps.UserEmail, msg.Parent, msg.Content)
				return a, tea.Batch(
					toast.Error("Replies are limited to 280 characters. Shorten yours and save again."),
					a.compose.Init(),
				)
			}
			return a, toast.Error("Could not open the composer.")
		}
		if msg.Cancelled() {
			return a, toast.Info("Cancelled.")
		}
		return a, a.publish(msg.Content, msg.Parent)

	case publishedMsg:
		return a.handlePublished(msg)
	}

	// Async results belong to the feed even while another view is open.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(msg)
	cmds = append(cmds, cmd)
	switch a.active {
	case composeView:
		a.compose, cmd = a.compose.Update(msg)
		cmds = append(cmds, cmd)
	case profileView:
		a.profile, cmd = a.profile.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case feedView:
		a.feed, cmd = a.feed.Update(msg)
	case composeView:
		a.compose, cmd = a.compose.Update(msg)
	case profileView:
		a.profile, cmd = a.profile.Update(msg)
	}
	return a, cmd
}

func (a App) publish(content string, parent *domain.Post) tea.Cmd {
	posts := a.deps.Posts
	return func() tea.Msg {
		var (
			p   domain.Post
			err error
		)
		if parent != nil {
			p, err = posts.Reply(context.Background(), parent.ID, content)
		} else {
			p, err = posts.Create(context.Background(), content)
		}
		return publishedMsg{content: content, parent: parent, post: p, err: err}
	}
}

func (a App) handlePublished(msg publishedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.Error.Printf("publishing tuit: %v", msg.err)
		if msg.parent == nil && a.deps.Drafts != nil {
			if err := a.deps.Drafts.SaveDraft(a.deps.UserEmail, msg.content); err != nil {
				logging.Warn.Printf("saving draft: %v", err)
			}
			return a, toast.Error("Could not publish. Your text was kept as a draft.")
		}
		return a, toast.Error("Could not publish your reply.")
	}

	var cmd tea.Cmd
	if msg.parent != nil {
		a.feed, cmd = a.feed.Update(feed.ReplyCreatedMsg{Reply: msg.post})
		return a, cmd
	}
	if a.deps.Drafts != nil {
		if err := a.deps.Drafts.ClearDraft(a.deps.UserEmail); err != nil {
			logging.Warn.Printf("clearing draft: %v", err)
		}
	}
	a.feed, cmd = a.feed.Update(feed.PostCreatedMsg{Post: msg.post})
	return a, cmd
}

// View renders the active sub-model with the toast line below it.
func (a App) View() string {
	var s string

	switch a.active {
	case feedView:
		s = a.feed.View()
	case composeView:
		s = a.compose.View()
	case profileView:
		s = a.profile.View()
	}

	if t := a.toast.View(); t != "" {
		s += "\n" + t
	}
	return s
}
