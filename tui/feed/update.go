package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureFeedCursorVisible()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch msg.(type) {
	case PageLoadedMsg, PageErrorMsg:
		return m.handleFeedLoadingMsg(msg)
	case LikeResultMsg, PostCreatedMsg, ReplyCreatedMsg:
		return m.handleInteractionMsg(msg)
	case ThreadLoadedMsg, ThreadErrorMsg:
		return m.handleDetailThreadMsg(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(msg)
	}
	return m, nil
}
