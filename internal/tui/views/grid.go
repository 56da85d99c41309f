package views

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/qr/internal/entries"
	"github.com/nicobailon/qr/internal/tui/theme"
)

const (
	queryPrompt  = "Filter>"
	headerHeight = 1
)

// GridState is the mutable session data: the query, the filtered view
// derived from it, the cursor into that view and the current layout.
type GridState struct {
	List       *entries.List
	Match      FilterOptions
	LayoutOpts LayoutOptions

	Query    string
	Filtered []int
	Cursor   int
	Grid     GridLayout
	Viewport Viewport
}

func NewGridState(list *entries.List, match FilterOptions, layout LayoutOptions) *GridState {
	g := &GridState{List: list, Match: match, LayoutOpts: layout, Cursor: NoCursor}
	g.refilter()
	return g
}

// SetQuery replaces the query and recomputes everything derived from it.
func (g *GridState) SetQuery(q string) {
	if q == g.Query && g.Filtered != nil {
		return
	}
	g.Query = q
	g.refilter()
}

func (g *GridState) AppendQuery(s string) {
	g.SetQuery(g.Query + s)
}

// EraseQuery drops the last rune of the query.
func (g *GridState) EraseQuery() bool {
	runes := []rune(g.Query)
	if len(runes) == 0 {
		return false
	}
	g.SetQuery(string(runes[:len(runes)-1]))
	return true
}

func (g *GridState) ClearQuery() bool {
	if g.Query == "" {
		return false
	}
	g.SetQuery("")
	return true
}

// DeleteWord removes the word before the end of the query along with any
// trailing spaces.
func (g *GridState) DeleteWord() bool {
	runes := []rune(g.Query)
	if len(runes) == 0 {
		return false
	}
	i := len(runes)
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	g.SetQuery(string(runes[:i]))
	return true
}

// Resize recomputes the layout for a terminal of the given size.
func (g *GridState) Resize(width, height int) {
	g.Viewport = Viewport{Width: width, Height: height}
	g.relayout()
}

// Move steps the cursor and reports whether it changed.
func (g *GridState) Move(dir Direction) bool {
	old := g.Cursor
	g.Cursor = Move(g.Cursor, dir, g.Grid)
	return old != g.Cursor
}

// Selected returns the highlighted entry. Once a size is known, an entry
// that is not drawn cannot be selected.
func (g *GridState) Selected() (entries.Entry, bool) {
	if g.Cursor == NoCursor || g.Cursor >= len(g.Filtered) {
		return entries.Entry{}, false
	}
	if g.Viewport != (Viewport{}) {
		if _, ok := g.Grid.CellOf(g.Cursor); !ok {
			return entries.Entry{}, false
		}
	}
	return g.List.At(g.Filtered[g.Cursor]), true
}

func (g *GridState) refilter() {
	prev := NoCursor
	if g.Cursor != NoCursor && g.Cursor < len(g.Filtered) {
		prev = g.Filtered[g.Cursor]
	}
	g.Filtered = Filter(g.List, g.Query, g.Match)
	g.Cursor = Reclamp(prev, g.Filtered)
	g.relayout()
}

func (g *GridState) relayout() {
	g.Grid = Layout(g.List, g.Filtered, g.listViewport(), g.LayoutOpts)
	// A cursor past capacity would highlight nothing, so it moves to the
	// last drawn cell even though its entry is still in Filtered.
	if v := g.Grid.Visible(); v > 0 && g.Cursor >= v {
		g.Cursor = v - 1
	}
}

func (g *GridState) listViewport() Viewport {
	return Viewport{Width: g.Viewport.Width, Height: g.Viewport.Height - headerHeight}
}

// RenderView draws the query line followed by the grid. footer, when not
// empty, takes the last line and must be accounted for by the caller when
// calling Resize.
func (g *GridState) RenderView(footer string) string {
	width := g.Viewport.Width
	if width <= 0 {
		return ""
	}

	header := theme.HeadStyle.Render(queryPrompt) + " " + theme.InputStyle.Render(g.Query) + theme.CaretStyle.Render(" ")
	count := theme.DimStyle.Render(fmt.Sprintf("%d/%d", len(g.Filtered), g.List.Len()))
	if gap := width - lipgloss.Width(header) - lipgloss.Width(count); gap > 0 {
		header += strings.Repeat(" ", gap) + count
	}

	var body string
	switch {
	case g.List.Empty():
		body = theme.DimStyle.Render("No entries")
	case len(g.Filtered) == 0:
		body = theme.DimStyle.Render("no matches")
	default:
		body = g.renderGrid()
	}

	lines := []string{header}
	if body != "" {
		lines = append(lines, body)
	}
	out := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if footer == "" {
		return out
	}
	bodyHeight := g.Viewport.Height - headerHeight
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Height(bodyHeight+headerHeight).Render(out),
		footer,
	)
}

func (g *GridState) renderGrid() string {
	rows := make([]string, 0, g.Grid.Rows)
	for r := 0; r < g.Grid.Rows; r++ {
		var b strings.Builder
		for c := 0; c < g.Grid.Cols; c++ {
			pos, ok := g.Grid.At(r, c)
			if !ok {
				continue
			}
			b.WriteString(g.renderCell(pos))
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(rows, "\n")
}

func (g *GridState) renderCell(pos int) string {
	name := g.List.At(g.Filtered[pos]).Name
	if lipgloss.Width(name) > g.Grid.CellWidth {
		name = ansi.Truncate(name, g.Grid.CellWidth, "…")
	}
	pad := g.Grid.CellWidth - lipgloss.Width(name)
	if pad < 0 {
		pad = 0
	}

	base, match := theme.NameStyle, theme.MatchStyle
	if pos == g.Cursor {
		base, match = theme.FocusStyle, theme.FocusMatchStyle
	}
	return highlight(name, Highlight(name, g.Query, g.Match), base, match) + strings.Repeat(" ", pad)
}

func highlight(text string, positions []int, base, match lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(text)
	}
	hit := make(map[int]bool, len(positions))
	for _, p := range positions {
		hit[p] = true
	}
	var b strings.Builder
	var run []rune
	runMatched := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runMatched {
			b.WriteString(match.Render(string(run)))
		} else {
			b.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}
	for i, r := range []rune(text) {
		if hit[i] != runMatched {
			flush()
			runMatched = hit[i]
		}
		run = append(run, r)
	}
	flush()
	return b.String()
}
