package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// It does NOT run the editor itself; callers use tea.ExecProcess with the
// returned *exec.Cmd so Bubble Tea suspends raw terminal mode.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const instructionComment = `<!--
tuiter: write your tuit below.

- SAVE and EXIT to send (e.g., :wq in vi).
- Emptying the file or making NO CHANGES will cancel.
%s-->

`

// Cmd prepares an *exec.Cmd for the editor and a temp file path.
// replyTo names the author being answered, or is empty for a new tuit.
func (e *EnvEditor) Cmd(content, replyTo string) (*exec.Cmd, string, error) {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vi"
	}

	tmpFile, err := os.CreateTemp("", "tuiter-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	note := ""
	if replyTo != "" {
		note = fmt.Sprintf("- Replying to %s\n", replyTo)
	}
	if _, err := tmpFile.WriteString(fmt.Sprintf(instructionComment, note) + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	cmd := exec.Command(editorCmd, tmpPath)
	return cmd, tmpPath, nil
}

// ModTime returns the modification time of the temp file, used to tell an
// untouched file from one saved with the same text.
func (e *EnvEditor) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat temp file: %w", err)
	}
	return info.ModTime(), nil
}

// ReadContent reads the temp file, strips the instruction comment, trims
// whitespace and removes the file.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if idx := strings.Index(content, "-->"); idx != -1 {
		content = content[idx+3:]
	}
	return strings.TrimSpace(content), nil
}
