// Package profile shows and edits the signed-in user's profile.
package profile

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/app"
	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/infra/logging"
	"github.com/tuiter-app/tuiter/tui/common"
	"github.com/tuiter-app/tuiter/tui/toast"
)

const (
	fieldName = iota
	fieldAvatar
	fieldPassword
)

const minPasswordLength = 6

var fieldLabels = []string{"Name", "Avatar URL", "New password (leave blank to keep)"}

// DoneMsg tells the root model the profile view was closed.
type DoneMsg struct{}

type loadedMsg struct {
	profile domain.Profile
}

type loadErrMsg struct {
	err error
}

type savedMsg struct {
	profile domain.Profile
}

type saveErrMsg struct {
	err error
}

// Model holds the profile form.
type Model struct {
	account app.AccountService
	profile domain.Profile
	inputs  []textinput.Model
	focus   int
	loading bool
	saving  bool
	err     string
}

// New creates a profile view that fetches the current profile on Init.
func New(account app.AccountService) Model {
	name := common.NewField("Your display name", 64)
	avatar := common.NewField("https://...", 512)
	password := common.NewField("", 128)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := Model{
		account: account,
		inputs:  []textinput.Model{name, avatar, password},
		loading: true,
	}
	m.inputs[fieldName].Focus()
	return m
}

// Init fetches the profile.
func (m Model) Init() tea.Cmd {
	account := m.account
	return tea.Batch(textinput.Blink, func() tea.Msg {
		p, err := account.Profile(context.Background())
		if err != nil {
			return loadErrMsg{err: err}
		}
		return loadedMsg{profile: p}
	})
}

// Profile returns the last profile loaded or saved.
func (m Model) Profile() domain.Profile {
	return m.profile
}

// Update handles messages for the profile view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.err = ""
		m.setProfile(msg.profile)
		return m, nil

	case loadErrMsg:
		m.loading = false
		logging.Error.Printf("loading profile: %v", msg.err)
		m.err = "Could not load your profile."
		return m, toast.Error(m.err)

	case savedMsg:
		m.saving = false
		m.setProfile(msg.profile)
		m.inputs[fieldPassword].SetValue("")
		return m, toast.Success("Profile updated.")

	case saveErrMsg:
		m.saving = false
		logging.Error.Printf("updating profile: %v", msg.err)
		return m, toast.Error("Could not update your profile.")

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DoneMsg{} }
		case "tab", "down":
			m.focus = common.MoveFocus(m.inputs, m.focus, 1)
			return m, nil
		case "shift+tab", "up":
			m.focus = common.MoveFocus(m.inputs, m.focus, -1)
			return m, nil
		case "enter", "ctrl+s":
			if msg.String() == "enter" && m.focus < len(m.inputs)-1 {
				m.focus = common.MoveFocus(m.inputs, m.focus, 1)
				return m, nil
			}
			return m.save()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setProfile(p domain.Profile) {
	m.profile = p
	m.inputs[fieldName].SetValue(p.Name)
	m.inputs[fieldAvatar].SetValue(p.Avatar)
}

// Validate checks the form and returns the update to send.
func (m Model) Validate() (domain.ProfileUpdate, string) {
	upd := domain.ProfileUpdate{
		Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
		Avatar:   strings.TrimSpace(m.inputs[fieldAvatar].Value()),
		Password: m.inputs[fieldPassword].Value(),
	}
	if upd.Name == "" {
		return upd, "Name cannot be empty."
	}
	if upd.Password != "" && len(upd.Password) < minPasswordLength {
		return upd, "Password must be at least 6 characters."
	}
	return upd, ""
}

func (m Model) save() (Model, tea.Cmd) {
	if m.loading || m.saving {
		return m, nil
	}
	upd, problem := m.Validate()
	if problem != "" {
		return m, toast.Error(problem)
	}
	m.saving = true
	account := m.account
	return m, func() tea.Msg {
		p, err := account.UpdateProfile(context.Background(), upd)
		if err != nil {
			return saveErrMsg{err: err}
		}
		return savedMsg{profile: p}
	}
}
