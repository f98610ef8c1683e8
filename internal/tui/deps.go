package tui

import "github.com/mblasco/sixshift/internal/clipboard"

// Deps carries the collaborators the TUI needs; tests inject fakes.
type Deps struct {
	// Clipboard receives results when the user copies from the result
	// screen.
	Clipboard clipboard.Copier

	// Accent is the theme accent color from config ("" = default).
	Accent string
}
