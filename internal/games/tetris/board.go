package tetris

// Cell is one board cell: empty, or the color token of the piece type that
// was locked into it.
type Cell uint8

// CellEmpty marks an unoccupied cell.
const CellEmpty Cell = 0

// cellFor returns the color token written when a piece locks.
func cellFor(t PieceType) Cell {
	return Cell(t) + 1
}

// PieceFor returns the piece type a non-empty cell was locked from.
func (c Cell) PieceFor() PieceType {
	return PieceType(c - 1)
}

// Grid is the fixed playfield of BoardRows x BoardCols cells. It is a value
// type, so snapshots copy it implicitly.
type Grid [BoardRows][BoardCols]Cell

// IsValid reports whether every given position is inside the horizontal and
// bottom bounds and unoccupied. Positions with a negative row are always
// valid: they sit in the spawn buffer above the visible board.
func (g *Grid) IsValid(cells []Offset) bool {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= BoardCols || c.Row >= BoardRows {
			return false
		}
		if c.Row >= 0 && g[c.Row][c.Col] != CellEmpty {
			return false
		}
	}
	return true
}

// Lock writes the color token into each position. Callers must ensure every
// row is >= 0 first; a piece still overlapping the spawn buffer means the
// stack topped out, which is game over rather than a board mutation.
func (g *Grid) Lock(cells []Offset, c Cell) {
	for _, pos := range cells {
		g[pos.Row][pos.Col] = c
	}
}

// ClearFullLines removes every fully occupied row, shifting the rows above
// down and inserting empty rows at the top. Returns the number of rows
// cleared. After a removal the same index is re-tested, since a new row has
// shifted into it.
func (g *Grid) ClearFullLines() int {
	cleared := 0
	for r := 0; r < BoardRows; {
		if !g.rowFull(r) {
			r++
			continue
		}
		for above := r; above > 0; above-- {
			g[above] = g[above-1]
		}
		g[0] = [BoardCols]Cell{}
		cleared++
	}
	return cleared
}

// rowFull reports whether every cell in the row is occupied.
func (g *Grid) rowFull(r int) bool {
	for c := 0; c < BoardCols; c++ {
		if g[r][c] == CellEmpty {
			return false
		}
	}
	return true
}
