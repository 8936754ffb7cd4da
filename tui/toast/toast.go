// Package toast shows short-lived notifications at the bottom of the screen.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/tui/common"
)

const defaultTTL = 4 * time.Second

type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

// ShowMsg asks the root model to display a toast.
type ShowMsg struct {
	Kind Kind
	Text string
}

type expireMsg struct {
	seq int
}

// Model holds the toast currently on screen, if any.
type Model struct {
	text string
	kind Kind
	seq  int
	ttl  time.Duration
}

// New creates a toast model. A zero ttl uses the default.
func New(ttl time.Duration) Model {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return Model{ttl: ttl}
}

// Show returns a Cmd delivering a ShowMsg.
func Show(kind Kind, text string) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Kind: kind, Text: text} }
}

func Info(text string) tea.Cmd    { return Show(KindInfo, text) }
func Success(text string) tea.Cmd { return Show(KindSuccess, text) }
func Error(text string) tea.Cmd   { return Show(KindError, text) }

// Update handles ShowMsg and expiry ticks. Newer toasts replace older ones.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		m.seq++
		m.text = msg.Text
		m.kind = msg.Kind
		seq := m.seq
		return m, tea.Tick(m.ttl, func(time.Time) tea.Msg { return expireMsg{seq: seq} })
	case expireMsg:
		if msg.seq == m.seq {
			m.text = ""
		}
	}
	return m, nil
}

// Text returns the visible toast text, or "".
func (m Model) Text() string { return m.text }

// Kind returns the kind of the visible toast.
func (m Model) Kind() Kind { return m.kind }

// View renders the toast line.
func (m Model) View() string {
	if m.text == "" {
		return ""
	}
	switch m.kind {
	case KindError:
		return common.ErrorStyle.Render(m.text)
	case KindSuccess:
		return common.SuccessStyle.Render(m.text)
	}
	return common.NoticeStyle.Render(m.text)
}
