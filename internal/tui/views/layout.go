package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nicobailon/qr/internal/entries"
)

type FillOrder int

const (
	FillRows FillOrder = iota
	FillColumns
)

func ParseFillOrder(s string) (FillOrder, error) {
	switch s {
	case "", "row", "rows":
		return FillRows, nil
	case "column", "columns":
		return FillColumns, nil
	}
	return FillRows, fmt.Errorf("unknown fill order %q (want row or column)", s)
}

func (f FillOrder) String() string {
	if f == FillColumns {
		return "column"
	}
	return "row"
}

const DefaultColumnPadding = 2

// Viewport is the area available for the entry grid, in cells.
type Viewport struct {
	Width  int
	Height int
}

type LayoutOptions struct {
	Fill    FillOrder
	Padding int
}

// Cell places one FilteredView position on screen.
type Cell struct {
	Pos int // index into the filtered view
	Row int
	Col int
	X   int
	Y   int
}

// GridLayout maps visible filtered positions to grid cells. Positions past
// Rows*Cols are not placed.
type GridLayout struct {
	Rows      int
	Cols      int
	CellWidth int
	Fill      FillOrder
	Cells     []Cell
	byPos     map[int]int
	byCoord   map[[2]int]int
}

// Layout arranges the filtered entries in a grid that fits viewport. It is
// a pure function of its inputs.
func Layout(list *entries.List, filtered []int, vp Viewport, opts LayoutOptions) GridLayout {
	g := GridLayout{Fill: opts.Fill}
	if len(filtered) == 0 || vp.Width <= 0 || vp.Height <= 0 {
		return g
	}
	pad := opts.Padding
	if pad < 0 {
		pad = 0
	}
	longest := 0
	for _, idx := range filtered {
		if w := lipgloss.Width(list.At(idx).Name); w > longest {
			longest = w
		}
	}
	if longest < 1 {
		longest = 1
	}

	cols := (vp.Width + pad) / (longest + pad)
	cellWidth := longest + pad
	if cols < 1 {
		// names wider than the screen get truncated to a single column
		cols = 1
		cellWidth = vp.Width
	}
	if cols > len(filtered) {
		cols = len(filtered)
	}

	rows := (len(filtered) + cols - 1) / cols
	if rows > vp.Height {
		rows = vp.Height
	}
	visible := len(filtered)
	if visible > rows*cols {
		visible = rows * cols
	}
	if opts.Fill == FillColumns {
		// shrink to the columns actually used so no column is left empty
		cols = (visible + rows - 1) / rows
	}

	g.Rows = rows
	g.Cols = cols
	g.CellWidth = cellWidth
	g.Cells = make([]Cell, 0, visible)
	g.byPos = make(map[int]int, visible)
	g.byCoord = make(map[[2]int]int, visible)
	for pos := 0; pos < visible; pos++ {
		var row, col int
		if opts.Fill == FillColumns {
			row, col = pos%rows, pos/rows
		} else {
			row, col = pos/cols, pos%cols
		}
		g.byPos[pos] = len(g.Cells)
		g.byCoord[[2]int{row, col}] = pos
		g.Cells = append(g.Cells, Cell{Pos: pos, Row: row, Col: col, X: col * cellWidth, Y: row})
	}
	return g
}

// Visible reports how many filtered positions were placed.
func (g GridLayout) Visible() int {
	return len(g.Cells)
}

// CellOf returns the cell holding filtered position pos.
func (g GridLayout) CellOf(pos int) (Cell, bool) {
	i, ok := g.byPos[pos]
	if !ok {
		return Cell{}, false
	}
	return g.Cells[i], true
}

// At returns the filtered position placed at row, col.
func (g GridLayout) At(row, col int) (int, bool) {
	pos, ok := g.byCoord[[2]int{row, col}]
	return pos, ok
}
