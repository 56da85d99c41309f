package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/qr/internal/tui/theme"
)

type toastType int

const (
	toastSuccess toastType = iota
	toastError
)

const toastDuration = 2 * time.Second

type toast struct {
	message   string
	kind      toastType
	expiresAt time.Time
}

func newToast(message string, kind toastType) *toast {
	return &toast{message: message, kind: kind, expiresAt: time.Now().Add(toastDuration)}
}

func (t *toast) expired() bool {
	return time.Now().After(t.expiresAt)
}

func (t *toast) render() string {
	if t.kind == toastError {
		return theme.ErrorStyle.Render(t.message)
	}
	return theme.SuccessStyle.Render(t.message)
}

type toastExpiredMsg struct{}

type copiedMsg struct {
	name string
	err  error
}

func toastExpireCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}
