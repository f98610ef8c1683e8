// Package clipboard provides system clipboard access for encode and
// decode results, behind an interface so tests can substitute a fake.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Copier writes text to a clipboard-like destination.
type Copier interface {
	// Copy places text on the clipboard, replacing previous contents.
	Copy(text string) error
}

// System is a Copier backed by the real OS clipboard.
type System struct{}

// Copy implements Copier.
//
// On headless systems (no X11/Wayland on Linux, for instance) the
// underlying library reports unavailability; the error is wrapped so
// callers can surface a clipboard-specific message.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// Memory is a Copier that records the last copied text. Test helper.
type Memory struct {
	// Last holds the most recently copied text.
	Last string

	// Err, if set, is returned from Copy without recording.
	Err error
}

// Copy implements Copier.
func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Last = text
	return nil
}
