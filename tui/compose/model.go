package compose

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/app"
	"github.com/tuiter-app/tuiter/domain"
	"github.com/tuiter-app/tuiter/infra/editor"
	"github.com/tuiter-app/tuiter/infra/logging"
)

// --- Mode ---

type mode int

const (
	editorMode mode = iota
	inlineMode
)

// --- Messages ---

// DoneMsg is sent when composing is complete (success or cancel).
type DoneMsg struct {
	Content string       // Empty if cancelled
	Parent  *domain.Post // Set when replying
	Err     error
}

// Cancelled reports whether the user backed out without text to send.
func (d DoneMsg) Cancelled() bool {
	return d.Err == nil && strings.TrimSpace(d.Content) == ""
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	opened  time.Time // temp file mtime before the editor ran
	err     error
}

// --- Model ---

// Model holds the state for the compose view.
type Model struct {
	mode     mode
	editor   *editor.EnvEditor
	drafts   app.DraftStore
	email    string
	parent   *domain.Post
	status   string
	textarea textarea.Model // Only used in inline mode
	tmpPath  string         // Temp file path for editor mode
	initial  string         // Draft the composer opened with
}

// NewEditor creates a compose model that opens $EDITOR via tea.Exec.
// parent is nil for a new top-level tuit.
func NewEditor(ed *editor.EnvEditor, drafts app.DraftStore, email string, parent *domain.Post) Model {
	m := Model{
		mode:   editorMode,
		editor: ed,
		drafts: drafts,
		email:  email,
		parent: parent,
		status: "Opening editor...",
	}
	m.initial = m.loadDraft()
	return m
}

// NewEditorWithText reopens $EDITOR on text that could not be sent, such as
// an over-long reply.
func NewEditorWithText(ed *editor.EnvEditor, drafts app.DraftStore, email string, parent *domain.Post, text string) Model {
	m := NewEditor(ed, drafts, email, parent)
	m.initial = text
	return m
}

// NewInline creates a compose model with an inline Bubble Tea textarea.
func NewInline(drafts app.DraftStore, email string, parent *domain.Post) Model {
	ta := textarea.New()
	ta.Placeholder = "What's happening?"
	if parent != nil {
		ta.Placeholder = "Write your reply"
	}
	ta.CharLimit = domain.MaxMessageLength
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(5)
	ta.Focus()

	m := Model{
		mode:   inlineMode,
		drafts: drafts,
		email:  email,
		parent: parent,
	}
	m.initial = m.loadDraft()
	ta.SetValue(m.initial)
	m.textarea = ta
	return m
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case editorMode:
		return m.launchEditor()
	case inlineMode:
		return textarea.Blink
	}
	return nil
}

// Value returns the text currently in the inline textarea, or the text the
// editor was opened with.
func (m Model) Value() string {
	if m.mode == editorMode {
		return m.initial
	}
	return m.textarea.Value()
}

// IsReply reports whether the composer answers an existing tuit.
func (m Model) IsReply() bool {
	return m.parent != nil
}

// Drafts apply to new top-level tuits only.
func (m Model) loadDraft() string {
	if m.drafts == nil || m.parent != nil {
		return ""
	}
	draft, ok, err := m.drafts.LoadDraft(m.email)
	if err != nil {
		logging.Warn.Printf("loading draft: %v", err)
		return ""
	}
	if !ok {
		return ""
	}
	return draft
}

func (m Model) saveDraft(content string) {
	if m.drafts == nil || m.parent != nil {
		return
	}
	if err := m.drafts.SaveDraft(m.email, content); err != nil {
		logging.Warn.Printf("saving draft: %v", err)
	}
}

// launchEditor prepares the editor command and uses tea.Exec to properly
// suspend Bubble Tea's raw terminal mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	replyTo := ""
	if m.parent != nil {
		replyTo = "@" + m.parent.Author
	}
	cmd, tmpPath, err := m.editor.Cmd(m.initial, replyTo)
	if err != nil {
		return done(DoneMsg{Parent: m.parent, Err: fmt.Errorf("preparing editor: %w", err)})
	}
	m.tmpPath = tmpPath
	opened, err := m.editor.ModTime(tmpPath)
	if err != nil {
		logging.Warn.Printf("editor: %v", err)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, opened: opened, err: err}
	})
}

// Update handles messages for the compose view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	// --- Editor mode messages ---

	case editorFinishedMsg:
		if msg.err != nil {
			return m, done(DoneMsg{Parent: m.parent, Err: fmt.Errorf("editor: %w", msg.err)})
		}

		untouched := false
		if !msg.opened.IsZero() {
			if mod, err := m.editor.ModTime(msg.tmpPath); err == nil && mod.Equal(msg.opened) {
				untouched = true
			}
		}

		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, done(DoneMsg{Parent: m.parent, Err: err})
		}

		if content == "" {
			// An emptied file discards the draft as well.
			m.saveDraft("")
			return m, done(DoneMsg{Parent: m.parent})
		}
		if untouched {
			return m, done(DoneMsg{Parent: m.parent}) // Cancel
		}
		if n := utf8.RuneCountInString(content); n > domain.MaxMessageLength {
			m.saveDraft(content)
			return m, done(DoneMsg{
				Content: content,
				Parent:  m.parent,
				Err:     fmt.Errorf("%d characters: %w", n, domain.ErrPostTooLong),
			})
		}

		return m, done(DoneMsg{Content: content, Parent: m.parent})

	// --- Inline mode messages ---

	case tea.KeyMsg:
		if m.mode != inlineMode {
			break
		}

		switch msg.String() {
		case "esc":
			m.saveDraft(m.textarea.Value())
			return m, done(DoneMsg{Parent: m.parent}) // Cancel.

		case "ctrl+d":
			content := strings.TrimSpace(m.textarea.Value())
			if content == "" {
				m.status = "Nothing to post yet."
				return m, nil
			}
			return m, done(DoneMsg{Content: content, Parent: m.parent})
		}

		m.status = ""
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	// Pass through any remaining messages to textarea in inline mode.
	if m.mode == inlineMode {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	return m, nil
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
