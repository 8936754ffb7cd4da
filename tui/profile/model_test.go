package profile

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/tui/toast"
)

type stubAccount struct {
	profile domain.Profile
	loadErr error
	saveErr error
	updates []domain.ProfileUpdate
}

func (s *stubAccount) Register(context.Context, domain.Credentials) error { return nil }

func (s *stubAccount) Login(context.Context, string, string) (string, error) { return "", nil }

func (s *stubAccount) Profile(context.Context) (domain.Profile, error) {
	return s.profile, s.loadErr
}

func (s *stubAccount) UpdateProfile(_ context.Context, upd domain.ProfileUpdate) (domain.Profile, error) {
	s.updates = append(s.updates, upd)
	if s.saveErr != nil {
		return domain.Profile{}, s.saveErr
	}
	return domain.Profile{Name: upd.Name, Email: s.profile.Email, Avatar: upd.Avatar}, nil
}

func ready(t *testing.T, acct *stubAccount) Model {
	t.Helper()
	m := New(acct)
	m, _ = m.Update(loadedMsg{profile: acct.profile})
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoad_FillsForm(t *testing.T) {
	acct := &stubAccount{profile: domain.Profile{Name: "Ana", Email: "ana@example.com", Avatar: "https://a/x.png"}}
	m := ready(t, acct)

	upd, problem := m.Validate()
	if problem != "" {
		t.Fatalf("unexpected problem %q", problem)
	}
	if upd.Name != "Ana" || upd.Avatar != "https://a/x.png" || upd.Password != "" {
		t.Fatalf("unexpected form values %+v", upd)
	}
}

func TestLoadError_Toasts(t *testing.T) {
	m := New(&stubAccount{})
	m, cmd := m.Update(loadErrMsg{err: errors.New("offline")})
	if cmd == nil {
		t.Fatalf("expected a toast")
	}
	if msg, ok := cmd().(toast.ShowMsg); !ok || msg.Kind != toast.KindError {
		t.Fatalf("expected error toast")
	}
	if m.loading {
		t.Fatalf("loading should be cleared")
	}
}

func TestSave_SendsUpdateAndClearsPassword(t *testing.T) {
	acct := &stubAccount{profile: domain.Profile{Name: "Ana", Email: "ana@example.com"}}
	m := ready(t, acct)

	m, _ = m.Update(key("tab"))
	m, _ = m.Update(key("tab"))
	m, _ = m.Update(key("secret99"))

	m, cmd := m.Update(key("ctrl+s"))
	if cmd == nil || !m.saving {
		t.Fatalf("expected save to start")
	}
	m, cmd = m.Update(cmd())

	if len(acct.updates) != 1 || acct.updates[0].Password != "secret99" || acct.updates[0].Name != "Ana" {
		t.Fatalf("unexpected updates %+v", acct.updates)
	}
	if m.saving {
		t.Fatalf("saving should be cleared")
	}
	if msg, ok := cmd().(toast.ShowMsg); !ok || msg.Kind != toast.KindSuccess {
		t.Fatalf("expected success toast")
	}
	if _, problem := m.Validate(); problem != "" {
		t.Fatalf("form should stay valid")
	}
	if upd, _ := m.Validate(); upd.Password != "" {
		t.Fatalf("password field should be cleared after save")
	}
}

func TestSave_RejectsEmptyName(t *testing.T) {
	acct := &stubAccount{}
	m := ready(t, acct)

	_, cmd := m.Update(key("ctrl+s"))
	if msg, ok := cmd().(toast.ShowMsg); !ok || msg.Kind != toast.KindError {
		t.Fatalf("expected validation toast")
	}
	if len(acct.updates) != 0 {
		t.Fatalf("no request expected")
	}
}

func TestSave_RejectsShortPassword(t *testing.T) {
	acct := &stubAccount{profile: domain.Profile{Name: "Ana"}}
	m := ready(t, acct)
	m, _ = m.Update(key("tab"))
	m, _ = m.Update(key("tab"))
	m, _ = m.Update(key("abc"))

	if _, problem := m.Validate(); problem == "" {
		t.Fatalf("expected a password problem")
	}
}

func TestEsc_Done(t *testing.T) {
	m := ready(t, &stubAccount{})
	_, cmd := m.Update(key("esc"))
	if _, ok := cmd().(DoneMsg); !ok {
		t.Fatalf("expected DoneMsg")
	}
}
