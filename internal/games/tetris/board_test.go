package tetris

import "testing"

func TestIsValidBounds(t *testing.T) {
	var g Grid
	tests := []struct {
		name  string
		cells []Offset
		want  bool
	}{
		{"inside", []Offset{{0, 0}, {19, 9}}, true},
		{"left of board", []Offset{{5, -1}}, false},
		{"right of board", []Offset{{5, BoardCols}}, false},
		{"below board", []Offset{{BoardRows, 4}}, false},
		{"spawn buffer", []Offset{{-1, 4}, {-2, 4}}, true},
	}
	for _, tt := range tests {
		if got := g.IsValid(tt.cells); got != tt.want {
			t.Errorf("%s: IsValid = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsValidOccupancy(t *testing.T) {
	var g Grid
	g[10][4] = cellFor(PieceT)

	if g.IsValid([]Offset{{10, 4}}) {
		t.Error("occupied cell reported valid")
	}
	if !g.IsValid([]Offset{{10, 5}}) {
		t.Error("free cell reported invalid")
	}
}

func TestLockWritesColorToken(t *testing.T) {
	var g Grid
	g.Lock([]Offset{{19, 0}, {19, 1}}, cellFor(PieceZ))

	if g[19][0] != cellFor(PieceZ) || g[19][1] != cellFor(PieceZ) {
		t.Error("locked cells not written")
	}
	if g[19][0].PieceFor() != PieceZ {
		t.Errorf("PieceFor = %v, want %v", g[19][0].PieceFor(), PieceZ)
	}
}

func fillRow(g *Grid, r int) {
	for c := 0; c < BoardCols; c++ {
		g[r][c] = cellFor(PieceO)
	}
}

func TestClearSingleLine(t *testing.T) {
	var g Grid
	g[18][3] = cellFor(PieceT)
	fillRow(&g, 19)

	if got := g.ClearFullLines(); got != 1 {
		t.Fatalf("cleared = %d, want 1", got)
	}
	// The partial row above shifts into the cleared row.
	if g[19][3] != cellFor(PieceT) {
		t.Error("row above did not shift down")
	}
	if g[18][3] != CellEmpty {
		t.Error("shifted row not emptied")
	}
}

func TestClearNonAdjacentLines(t *testing.T) {
	var g Grid
	fillRow(&g, 17)
	g[18][0] = cellFor(PieceJ)
	fillRow(&g, 19)

	if got := g.ClearFullLines(); got != 2 {
		t.Fatalf("cleared = %d, want 2", got)
	}
	// The surviving partial row lands on the bottom.
	if g[19][0] != cellFor(PieceJ) {
		t.Error("partial row not at bottom after clears")
	}
	for r := 0; r < 19; r++ {
		for c := 0; c < BoardCols; c++ {
			if g[r][c] != CellEmpty {
				t.Fatalf("cell (%d,%d) not empty after clears", r, c)
			}
		}
	}
}

func TestClearFourLines(t *testing.T) {
	var g Grid
	for r := 16; r < 20; r++ {
		fillRow(&g, r)
	}
	if got := g.ClearFullLines(); got != 4 {
		t.Fatalf("cleared = %d, want 4", got)
	}
}

func TestClearNothingOnPartialRows(t *testing.T) {
	var g Grid
	for c := 0; c < BoardCols-1; c++ {
		g[19][c] = cellFor(PieceS)
	}
	if got := g.ClearFullLines(); got != 0 {
		t.Errorf("cleared = %d, want 0", got)
	}
	if g[19][0] == CellEmpty {
		t.Error("partial row was modified")
	}
}
