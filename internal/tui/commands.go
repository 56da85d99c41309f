package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/qr/internal/entries"
)

func copyCommandCmd(write func(string) error, e entries.Entry) tea.Cmd {
	return func() tea.Msg {
		err := write(e.Command)
		if err != nil {
			log.Printf("copy %q: %v", e.Name, err)
		}
		return copiedMsg{name: e.Name, err: err}
	}
}
