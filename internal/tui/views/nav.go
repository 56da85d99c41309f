package views

// NoCursor marks an empty filtered view.
const NoCursor = -1

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Move returns the cursor after one step in dir. Moves that would leave the
// occupied cells of the grid, or cross rows horizontally, leave the cursor
// where it is.
func Move(cursor int, dir Direction, g GridLayout) int {
	if cursor == NoCursor {
		return NoCursor
	}
	cell, ok := g.CellOf(cursor)
	if !ok {
		return cursor
	}
	row, col := cell.Row, cell.Col
	switch dir {
	case Up:
		row--
	case Down:
		row++
	case Left:
		col--
	case Right:
		col++
	}
	if pos, ok := g.At(row, col); ok {
		return pos
	}
	return cursor
}

// Reclamp keeps the cursor on the same entry after the filtered view changed.
// prev is the entry index that was highlighted, or NoCursor.
func Reclamp(prev int, filtered []int) int {
	if len(filtered) == 0 {
		return NoCursor
	}
	if prev != NoCursor {
		for pos, idx := range filtered {
			if idx == prev {
				return pos
			}
		}
	}
	return 0
}
