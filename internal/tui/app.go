package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/qr/internal/entries"
	"github.com/nicobailon/qr/internal/tui/theme"
	"github.com/nicobailon/qr/internal/tui/views"
)

const footerHeight = 1

type Options struct {
	Match    views.FilterOptions
	Layout   views.LayoutOptions
	ShowHelp bool
}

type model struct {
	grid     *views.GridState
	keys     keyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
	toast    *toast
	copy     func(string) error
	selected *entries.Entry
	quitting bool
}

type App struct {
	list        *entries.List
	opts        Options
	programOpts []tea.ProgramOption
}

func New(list *entries.List, opts Options, programOpts ...tea.ProgramOption) *App {
	return &App{list: list, opts: opts, programOpts: programOpts}
}

// Run drives the session until the user confirms or quits. It returns the
// chosen entry, or nil when the session was abandoned. The terminal is
// restored before Run returns on every path.
func (a *App) Run() (*entries.Entry, error) {
	m := initialModel(a.list, a.opts)
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, a.programOpts...)
	p := tea.NewProgram(m, opts...)
	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, nil
		}
		return nil, fmt.Errorf("run session: %w", err)
	}
	if fm, ok := finalModel.(model); ok && fm.selected != nil {
		return fm.selected, nil
	}
	return nil, nil
}

func initialModel(list *entries.List, opts Options) model {
	h := help.New()
	h.Styles.ShortKey = theme.KeyStyle
	h.Styles.ShortDesc = theme.DimStyle
	h.Styles.ShortSeparator = theme.DimStyle

	return model{
		grid:     views.NewGridState(list, opts.Match, opts.Layout),
		keys:     defaultKeyMap(),
		help:     h,
		showHelp: opts.ShowHelp,
		copy:     clipboard.WriteAll,
	}
}

// TEA plumbing

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.grid.Resize(msg.Width, msg.Height-footerHeight)
		return m, nil
	case tea.KeyMsg:
		return handleKey(&m, msg)
	case copiedMsg:
		if msg.err != nil {
			m.toast = newToast("copy failed: "+msg.err.Error(), toastError)
		} else {
			m.toast = newToast("copied "+msg.name, toastSuccess)
		}
		return m, toastExpireCmd()
	case toastExpiredMsg:
		if m.toast != nil && m.toast.expired() {
			m.toast = nil
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	return m.grid.RenderView(m.footer())
}

func (m model) footer() string {
	if m.toast != nil {
		return m.toast.render()
	}
	if m.showHelp {
		return m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return " "
}
