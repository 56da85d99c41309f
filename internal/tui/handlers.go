package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func handleKey(m *model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := classify(msg, m.keys)
	switch a.kind {
	case actionQuit:
		return handleQuit(m)
	case actionConfirm:
		return handleConfirm(m)
	case actionNavigate:
		return handleGridMove(m, a.dir)
	case actionAppend:
		return handleGridFilterInput(m, a.text)
	case actionErase:
		return handleGridBackspace(m)
	case actionClear:
		return handleGridClear(m)
	case actionDeleteWord:
		return handleGridDeleteWord(m)
	case actionCopy:
		return handleCopy(m)
	}
	return *m, nil
}

func handleQuit(m *model) (tea.Model, tea.Cmd) {
	log.Printf("quit")
	m.selected = nil
	m.quitting = true
	return *m, tea.Quit
}

// handleConfirm ends the session with the highlighted entry. With nothing
// highlighted it does nothing.
func handleConfirm(m *model) (tea.Model, tea.Cmd) {
	e, ok := m.grid.Selected()
	if !ok {
		return *m, nil
	}
	log.Printf("confirm %q", e.Name)
	m.selected = &e
	m.quitting = true
	return *m, tea.Quit
}

func handleCopy(m *model) (tea.Model, tea.Cmd) {
	e, ok := m.grid.Selected()
	if !ok || m.copy == nil {
		return *m, nil
	}
	return *m, copyCommandCmd(m.copy, e)
}
