package views

import (
	"strings"
	"testing"

	"github.com/nicobailon/qr/internal/entries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioState() *GridState {
	list := entries.New([]entries.Entry{
		{Name: "alpha", Command: "cmd1"},
		{Name: "abba", Command: "cmd2"},
		{Name: "beta", Command: "cmd3"},
	})
	g := NewGridState(list, FilterOptions{}, LayoutOptions{Padding: DefaultColumnPadding})
	g.Resize(80, 24)
	return g
}

func assertCursorInvariant(t *testing.T, g *GridState) {
	t.Helper()
	if len(g.Filtered) == 0 {
		assert.Equal(t, NoCursor, g.Cursor)
		return
	}
	assert.GreaterOrEqual(t, g.Cursor, 0)
	assert.Less(t, g.Cursor, len(g.Filtered))
}

func TestGridStateInitial(t *testing.T) {
	g := scenarioState()
	assert.Equal(t, []int{0, 1, 2}, g.Filtered)
	assert.Equal(t, 0, g.Cursor)

	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, "cmd1", sel.Command)
}

func TestGridStateKeepsHighlightedEntry(t *testing.T) {
	g := scenarioState()
	require.True(t, g.Move(Right))
	sel, _ := g.Selected()
	require.Equal(t, "abba", sel.Name)

	g.AppendQuery("a")
	g.AppendQuery("b")
	assert.Equal(t, []int{1}, g.Filtered)
	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, "cmd2", sel.Command)

	g.EraseQuery()
	g.EraseQuery()
	assert.Equal(t, "", g.Query)
	sel, _ = g.Selected()
	assert.Equal(t, "abba", sel.Name, "cursor follows the entry when the view widens")
}

func TestGridStateFallsBackToFirst(t *testing.T) {
	g := scenarioState()
	g.Move(Right)
	g.Move(Right)
	sel, _ := g.Selected()
	require.Equal(t, "beta", sel.Name)

	g.SetQuery("ab")
	assert.Equal(t, 0, g.Cursor)
	sel, _ = g.Selected()
	assert.Equal(t, "abba", sel.Name)
}

func TestGridStateCursorInvariant(t *testing.T) {
	g := scenarioState()
	steps := []func(){
		func() { g.AppendQuery("z") },
		func() { g.Move(Down) },
		func() { g.Move(Left) },
		func() { g.EraseQuery() },
		func() { g.Move(Right) },
		func() { g.AppendQuery("et") },
		func() { g.Resize(3, 2) },
		func() { g.ClearQuery() },
		func() { g.Resize(0, 0) },
		func() { g.Move(Up) },
	}
	for _, step := range steps {
		step()
		assertCursorInvariant(t, g)
	}
}

func TestGridStateEmptyList(t *testing.T) {
	g := NewGridState(entries.New(nil), FilterOptions{}, LayoutOptions{})
	g.Resize(80, 24)
	assert.Equal(t, NoCursor, g.Cursor)
	assert.False(t, g.Move(Down))
	g.AppendQuery("a")
	assert.Empty(t, g.Filtered)
	_, ok := g.Selected()
	assert.False(t, ok)
	assert.Contains(t, g.RenderView(""), "No entries")
}

func TestGridStateQueryEditing(t *testing.T) {
	g := scenarioState()
	assert.False(t, g.EraseQuery())
	assert.False(t, g.ClearQuery())

	g.SetQuery("ssh prod")
	assert.True(t, g.DeleteWord())
	assert.Equal(t, "ssh ", g.Query)
	assert.True(t, g.DeleteWord())
	assert.Equal(t, "", g.Query)
	assert.False(t, g.DeleteWord())

	g.SetQuery("héé")
	g.EraseQuery()
	assert.Equal(t, "hé", g.Query)
}

func TestGridStateClampsToVisible(t *testing.T) {
	g := scenarioState()
	g.Move(Right)
	g.Move(Right)
	require.Equal(t, 2, g.Cursor)

	// one row of list space (header takes the other) and room for one column
	g.Resize(6, 2)
	assert.Equal(t, 1, g.Grid.Visible())
	assert.Equal(t, 0, g.Cursor)
}

func TestRenderView(t *testing.T) {
	g := scenarioState()
	out := g.RenderView("")
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "Filter>")
	assert.Contains(t, lines[0], "3/3")
	assert.Contains(t, lines[1], "alpha")
	assert.Contains(t, lines[1], "abba")
	assert.Contains(t, lines[1], "beta")

	g.SetQuery("ab")
	out = g.RenderView("")
	assert.Contains(t, out, "abba")
	assert.NotContains(t, out, "alpha")

	g.SetQuery("zz")
	assert.Contains(t, g.RenderView(""), "no matches")
}

func TestRenderViewFooter(t *testing.T) {
	g := scenarioState()
	g.Resize(80, 9)
	out := g.RenderView("esc quit")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[len(lines)-1], "esc quit")
}

func TestNoSelectionWhenGridHasNoRoom(t *testing.T) {
	g := scenarioState()
	g.Resize(80, 1)

	assert.Equal(t, []int{0, 1, 2}, g.Filtered)
	assert.Equal(t, 0, g.Grid.Visible())
	assertCursorInvariant(t, g)
	_, ok := g.Selected()
	assert.False(t, ok, "an entry that is not drawn cannot be confirmed")
	assert.False(t, g.Move(Right))

	view := g.RenderView("")
	assert.Equal(t, 1, strings.Count(view, "\n")+1)
	assert.Contains(t, view, "3/3")

	g.Resize(80, 24)
	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, "cmd1", sel.Command)
}

func TestSelectionBeforeFirstResize(t *testing.T) {
	list := entries.New([]entries.Entry{{Name: "alpha", Command: "cmd1"}})
	g := NewGridState(list, FilterOptions{}, LayoutOptions{Padding: DefaultColumnPadding})

	sel, ok := g.Selected()
	require.True(t, ok, "without a known size the cursor entry is selectable")
	assert.Equal(t, "cmd1", sel.Command)
}
