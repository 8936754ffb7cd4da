// Package login runs the sign-in and registration form shown before the
// feed when no valid session exists.
package login

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/app"
	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/infra/logging"
	"github.com/tuiter-app/tuiter/tui/common"
)

// Mode selects between signing in and creating an account.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

const minPasswordLength = 6

type resultMsg struct {
	token string
	email string
	err   error
}

// Model is the login / registration form.
type Model struct {
	account app.AccountService
	mode    Mode
	inputs  []textinput.Model
	focus   int
	busy    bool
	err     string
	token   string
	email   string
	quit    bool
}

// New creates a form in the given mode. email pre-fills the email field.
func New(account app.AccountService, mode Mode, email string) Model {
	name := common.NewField("Display name", 64)
	mailField := common.NewField("you@example.com", 254)
	mailField.SetValue(email)
	password := common.NewField("", 128)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := Model{
		account: account,
		mode:    mode,
		inputs:  []textinput.Model{name, mailField, password},
	}
	m.focus = common.MoveFocus(m.inputs, m.firstField(), 0)
	if email != "" {
		m.focus = common.MoveFocus(m.inputs, fieldPassword, 0)
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Token returns the session token after a successful sign-in.
func (m Model) Token() string { return m.token }

// Email returns the email the session belongs to.
func (m Model) Email() string { return m.email }

// Cancelled reports whether the user left without signing in.
func (m Model) Cancelled() bool { return m.quit && m.token == "" }

func (m Model) firstField() int {
	if m.mode == ModeRegister {
		return fieldName
	}
	return fieldEmail
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.busy = false
		if msg.err != nil {
			logging.Warn.Printf("%s failed: %v", m.action(), msg.err)
			m.err = describe(msg.err)
			return m, nil
		}
		m.token = msg.token
		m.email = msg.email
		m.quit = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "ctrl+t":
			if m.mode == ModeLogin {
				m.mode = ModeRegister
			} else {
				m.mode = ModeLogin
			}
			m.err = ""
			m.focus = common.MoveFocus(m.inputs, m.firstField(), 0)
			return m, nil
		case "tab", "down":
			m.focus = m.step(1)
			return m, nil
		case "shift+tab", "up":
			m.focus = m.step(-1)
			return m, nil
		case "enter":
			if m.focus != fieldPassword {
				m.focus = m.step(1)
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// step moves focus, skipping the name field when signing in.
func (m Model) step(delta int) int {
	next := common.MoveFocus(m.inputs, m.focus, delta)
	if m.mode == ModeLogin && next == fieldName {
		next = common.MoveFocus(m.inputs, next, delta)
	}
	return next
}

func (m Model) action() string {
	if m.mode == ModeRegister {
		return "registration"
	}
	return "login"
}

// Credentials returns the trimmed form values, or a message describing
// what is missing.
func (m Model) Credentials() (domain.Credentials, string) {
	c := domain.Credentials{
		Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
		Email:    strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Password: m.inputs[fieldPassword].Value(),
	}
	if m.mode == ModeRegister && c.Name == "" {
		return c, "Name is required."
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return c, "Enter a valid email address."
	}
	if c.Password == "" {
		return c, "Password is required."
	}
	if m.mode == ModeRegister && len(c.Password) < minPasswordLength {
		return c, fmt.Sprintf("Password must be at least %d characters.", minPasswordLength)
	}
	return c, ""
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	creds, problem := m.Credentials()
	if problem != "" {
		m.err = problem
		return m, nil
	}
	m.busy = true
	m.err = ""
	account, register := m.account, m.mode == ModeRegister
	return m, func() tea.Msg {
		ctx := context.Background()
		if register {
			if err := account.Register(ctx, creds); err != nil {
				return resultMsg{err: fmt.Errorf("registering: %w", err)}
			}
		}
		token, err := account.Login(ctx, creds.Email, creds.Password)
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{token: token, email: creds.Email}
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "Wrong email or password."
	case errors.Is(err, domain.ErrNotFound):
		return "No account with that email."
	}
	return "Could not reach the server: " + err.Error()
}
