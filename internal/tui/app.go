// Package tui implements the interactive terminal interface: a home
// menu, a digit-entry screen, and a result screen with clipboard copy.
// It is the terminal equivalent of the three windows of the desktop
// utility this tool descends from.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mblasco/sixshift/internal/cipher"
	"github.com/mblasco/sixshift/internal/logger"
)

type screen int

const (
	screenHome screen = iota
	screenEntry
	screenResult
)

type menuItem struct {
	title string
	desc  string
	op    string // "encode", "decode", or "" for quit
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	menu  list.Model
	input textinput.Model

	op      string // active operation on the entry/result screens
	errMsg  string
	entered string // the submitted input
	result  string // the transformed output
	copied  bool
	copyErr string
}

// Run starts the interactive session and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := NewTheme(deps.Accent)

	items := []list.Item{
		menuItem{"Encode", "Encode a six-digit number", "encode"},
		menuItem{"Decode", "Decode a previously encoded number", "decode"},
		menuItem{"Quit", "Exit sixshift", ""},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "sixshift"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "000000"
	ti.CharLimit = cipher.Length
	ti.Width = cipher.Length + 2
	ti.Validate = digitsOnly

	return model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		input: ti,
	}
}

// digitsOnly mirrors the numeric validator of the original input
// field: only ASCII digits may be typed at all.
func digitsOnly(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenEntry:
			return m.updateEntry(msg)
		case screenResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		if it.op == "" {
			return m, tea.Quit
		}
		m.op = it.op
		m.errMsg = ""
		m.input.Reset()
		m.scr = screenEntry
		return m, m.input.Focus()
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenHome
		m.errMsg = ""
		return m, nil

	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the active operation on the entered value and moves to
// the result screen, or surfaces the validation error inline.
func (m model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	fn := cipher.Encode
	if m.op == "decode" {
		fn = cipher.Decode
	}

	output, err := fn(value)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	logger.L().Info("transform", "op", m.op, "trace", "tui")

	m.entered = value
	m.result = output
	m.copied = false
	m.copyErr = ""
	m.errMsg = ""
	m.scr = screenResult
	return m, nil
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		if m.deps.Clipboard == nil {
			m.copyErr = "no clipboard available"
			return m, nil
		}
		if err := m.deps.Clipboard.Copy(m.result); err != nil {
			m.copyErr = err.Error()
			m.copied = false
		} else {
			m.copied = true
			m.copyErr = ""
		}
		return m, nil

	case "esc", "b", "enter":
		m.scr = screenHome
		return m, nil

	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	switch m.scr {
	case screenEntry:
		return m.viewEntry()
	case screenResult:
		return m.viewResult()
	}
	return m.viewHome()
}

func (m model) viewHome() string {
	var b strings.Builder
	b.WriteString(m.menu.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter select · q quit"))
	return b.String()
}

func (m model) viewEntry() string {
	label := "Enter a six-digit number to encode"
	if m.op == "decode" {
		label = "Enter a six-digit number to decode"
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(label))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.theme.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter submit · esc back"))
	return m.theme.Card.Render(b.String())
}

func (m model) viewResult() string {
	verb := "encoded"
	if m.op == "decode" {
		verb = "decoded"
	}

	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%s %s", verb, m.entered)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Result.Render(m.result))
	b.WriteString("\n\n")
	switch {
	case m.copyErr != "":
		b.WriteString(m.theme.Error.Render(m.copyErr))
		b.WriteString("\n")
	case m.copied:
		b.WriteString(m.theme.Subtitle.Render("copied to clipboard"))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render("c copy · esc back · q quit"))
	return m.theme.Card.Render(b.String())
}
