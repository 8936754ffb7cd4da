package store

import (
	"fmt"
	"strings"
)

// LoadDraft returns the saved draft for email, if any.
func (d *DB) LoadDraft(email string) (string, bool, error) {
	v, ok, err := d.get(scopedKey("draft", email))
	if err != nil {
		return "", false, fmt.Errorf("loading draft: %w", err)
	}
	return v, ok, nil
}

// SaveDraft stores the trimmed message, replacing any previous draft.
// A blank message clears the draft instead.
func (d *DB) SaveDraft(email, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return d.ClearDraft(email)
	}
	if err := d.put(scopedKey("draft", email), message); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// ClearDraft deletes the draft for email.
func (d *DB) ClearDraft(email string) error {
	if err := d.del(scopedKey("draft", email)); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	return nil
}
