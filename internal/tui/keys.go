package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/qr/internal/tui/views"
)

type keyMap struct {
	Quit       key.Binding
	Confirm    key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Erase      key.Binding
	Clear      key.Binding
	DeleteWord key.Binding
	Copy       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		DeleteWord: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "delete word"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Quit, k.Erase, k.Clear, k.Copy}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Quit, k.Copy},
		{k.Erase, k.Clear, k.DeleteWord},
	}
}

type actionKind int

const (
	actionIgnore actionKind = iota
	actionQuit
	actionConfirm
	actionNavigate
	actionAppend
	actionErase
	actionClear
	actionDeleteWord
	actionCopy
)

type action struct {
	kind actionKind
	dir  views.Direction
	text string
}

// classify maps one keystroke to the action it triggers.
func classify(msg tea.KeyMsg, keys keyMap) action {
	switch {
	case key.Matches(msg, keys.Quit):
		return action{kind: actionQuit}
	case key.Matches(msg, keys.Confirm):
		return action{kind: actionConfirm}
	case key.Matches(msg, keys.Up):
		return action{kind: actionNavigate, dir: views.Up}
	case key.Matches(msg, keys.Down):
		return action{kind: actionNavigate, dir: views.Down}
	case key.Matches(msg, keys.Left):
		return action{kind: actionNavigate, dir: views.Left}
	case key.Matches(msg, keys.Right):
		return action{kind: actionNavigate, dir: views.Right}
	case key.Matches(msg, keys.Erase):
		return action{kind: actionErase}
	case key.Matches(msg, keys.Clear):
		return action{kind: actionClear}
	case key.Matches(msg, keys.DeleteWord):
		return action{kind: actionDeleteWord}
	case key.Matches(msg, keys.Copy):
		return action{kind: actionCopy}
	}

	switch msg.Type {
	case tea.KeySpace:
		return action{kind: actionAppend, text: " "}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return action{kind: actionIgnore}
		}
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				return action{kind: actionIgnore}
			}
		}
		return action{kind: actionAppend, text: string(msg.Runes)}
	}
	return action{kind: actionIgnore}
}
