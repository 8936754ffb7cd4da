package login

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/domain"
)

type stubAccount struct {
	registered []domain.Credentials
	logins     []string
	loginErr   error
}

func (s *stubAccount) Register(_ context.Context, c domain.Credentials) error {
	s.registered = append(s.registered, c)
	return nil
}

func (s *stubAccount) Login(_ context.Context, email, _ string) (string, error) {
	s.logins = append(s.logins, email)
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return "tok-" + email, nil
}

func (s *stubAccount) Profile(context.Context) (domain.Profile, error) {
	return domain.Profile{}, nil
}

func (s *stubAccount) UpdateProfile(context.Context, domain.ProfileUpdate) (domain.Profile, error) {
	return domain.Profile{}, nil
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out, cmd
}

func typeInto(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func enter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestLogin_Success(t *testing.T) {
	acct := &stubAccount{}
	m := New(acct, ModeLogin, "")

	m = typeInto(t, m, "ana@example.com")
	m, _ = enter(t, m)
	m = typeInto(t, m, "hunter22")
	m, cmd := enter(t, m)
	if cmd == nil || !m.busy {
		t.Fatalf("expected submission")
	}
	m, cmd = send(t, m, cmd())

	if m.Token() != "tok-ana@example.com" || m.Email() != "ana@example.com" {
		t.Fatalf("token=%q email=%q", m.Token(), m.Email())
	}
	if len(acct.registered) != 0 {
		t.Fatalf("login must not register")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit after sign-in")
	}
	if m.Cancelled() {
		t.Fatalf("successful sign-in is not a cancel")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	acct := &stubAccount{loginErr: fmt.Errorf("login: %w", domain.ErrUnauthorized)}
	m := New(acct, ModeLogin, "ana@example.com")

	m = typeInto(t, m, "nope")
	m, cmd := enter(t, m)
	m, _ = send(t, m, cmd())

	if m.Token() != "" || m.err != "Wrong email or password." {
		t.Fatalf("token=%q err=%q", m.Token(), m.err)
	}
	if m.busy {
		t.Fatalf("busy should be cleared")
	}
}

func TestRegister_RegistersThenLogsIn(t *testing.T) {
	acct := &stubAccount{}
	m := New(acct, ModeRegister, "")

	m = typeInto(t, m, "Ana")
	m, _ = enter(t, m)
	m = typeInto(t, m, "ana@example.com")
	m, _ = enter(t, m)
	m = typeInto(t, m, "hunter22")
	m, cmd := enter(t, m)
	m, _ = send(t, m, cmd())

	if len(acct.registered) != 1 || acct.registered[0].Name != "Ana" {
		t.Fatalf("registered = %+v", acct.registered)
	}
	if len(acct.logins) != 1 || m.Token() == "" {
		t.Fatalf("expected a login after registering")
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		email string
		pass  string
	}{
		{name: "bad email", mode: ModeLogin, email: "nope", pass: "secret"},
		{name: "missing password", mode: ModeLogin, email: "a@b.co"},
		{name: "register without name", mode: ModeRegister, email: "a@b.co", pass: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := &stubAccount{}
			m := New(acct, tt.mode, "")
			m.inputs[fieldEmail].SetValue(tt.email)
			m.inputs[fieldPassword].SetValue(tt.pass)

			if _, problem := m.Credentials(); problem == "" {
				t.Fatalf("expected a validation problem")
			}
			m.focus = fieldPassword
			m, cmd := enter(t, m)
			if cmd != nil || m.err == "" {
				t.Fatalf("expected inline error and no request")
			}
		})
	}
}

func TestEsc_Cancels(t *testing.T) {
	m := New(&stubAccount{}, ModeLogin, "")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Cancelled() {
		t.Fatalf("expected cancel")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit")
	}
}

func TestToggleMode(t *testing.T) {
	m := New(&stubAccount{}, ModeLogin, "")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.mode != ModeRegister || m.focus != fieldName {
		t.Fatalf("mode=%v focus=%d", m.mode, m.focus)
	}
}
