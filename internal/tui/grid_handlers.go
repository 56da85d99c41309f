package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/qr/internal/tui/views"
)

func handleGridMove(m *model, dir views.Direction) (tea.Model, tea.Cmd) {
	if m.grid.Move(dir) {
		log.Printf("move %s -> %d", dir, m.grid.Cursor)
	}
	return *m, nil
}

func handleGridFilterInput(m *model, text string) (tea.Model, tea.Cmd) {
	m.grid.AppendQuery(text)
	log.Printf("query %q: %d matches", m.grid.Query, len(m.grid.Filtered))
	return *m, nil
}

func handleGridBackspace(m *model) (tea.Model, tea.Cmd) {
	if m.grid.EraseQuery() {
		log.Printf("query %q: %d matches", m.grid.Query, len(m.grid.Filtered))
	}
	return *m, nil
}

func handleGridClear(m *model) (tea.Model, tea.Cmd) {
	m.grid.ClearQuery()
	return *m, nil
}

func handleGridDeleteWord(m *model) (tea.Model, tea.Cmd) {
	m.grid.DeleteWord()
	return *m, nil
}
