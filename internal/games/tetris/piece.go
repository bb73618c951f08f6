// Package tetris implements a falling-block puzzle game: a pure, tick-driven
// engine (board, seven-bag randomizer, SRS rotation, scoring, hold, lifecycle)
// plus the platform-facing wrapper that maps inputs and renders the session.
package tetris

// Board dimensions and spawn position. Row -1 is the spawn buffer: pieces
// enter partially above the visible board, which is normal, not an error.
const (
	BoardRows = 20
	BoardCols = 10
	SpawnRow  = -1
	SpawnCol  = 3
)

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	pieceTypeCount = 7
)

// String returns the canonical one-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// Offset is a (row, col) displacement. Piece shapes are offset sets relative
// to the piece position; kick candidates are offsets relative to the piece.
type Offset struct {
	Row, Col int
}

// baseShapes holds each piece in its spawn orientation inside its bounding
// box. The other three rotation states are derived at init time by rotating
// the box clockwise, so the four offset sets per type stay consistent with
// the kick tables in kicks.go.
var baseShapes = map[PieceType][]string{
	PieceI: {
		"....",
		"XXXX",
		"....",
		"....",
	},
	PieceO: {
		"XX",
		"XX",
	},
	PieceT: {
		".X.",
		"XXX",
		"...",
	},
	PieceS: {
		".XX",
		"XX.",
		"...",
	},
	PieceZ: {
		"XX.",
		".XX",
		"...",
	},
	PieceJ: {
		"X..",
		"XXX",
		"...",
	},
	PieceL: {
		"..X",
		"XXX",
		"...",
	},
}

// shapeOffsets[type][rotation] is the list of occupied cells relative to the
// piece position, one list per rotation state 0..3.
var shapeOffsets [pieceTypeCount][4][]Offset

func init() {
	for t := PieceI; t <= PieceL; t++ {
		box := baseShapes[t]
		for r := 0; r < 4; r++ {
			shapeOffsets[t][r] = offsetsFrom(box)
			box = rotateBox(box)
		}
	}
}

// rotateBox rotates a square shape box 90 degrees clockwise.
func rotateBox(box []string) []string {
	n := len(box)
	out := make([]string, n)
	for r := 0; r < n; r++ {
		row := make([]byte, n)
		for c := 0; c < n; c++ {
			row[c] = box[n-1-c][r]
		}
		out[r] = string(row)
	}
	return out
}

// offsetsFrom extracts the occupied cells of a shape box.
func offsetsFrom(box []string) []Offset {
	var offs []Offset
	for r, row := range box {
		for c := 0; c < len(row); c++ {
			if row[c] == 'X' {
				offs = append(offs, Offset{Row: r, Col: c})
			}
		}
	}
	return offs
}

// Shape returns the occupied cells of a piece type in the given rotation
// state, relative to the piece position.
func Shape(t PieceType, rotation int) []Offset {
	return shapeOffsets[t][((rotation%4)+4)%4]
}

// ActivePiece is the falling piece: its type, rotation state in [0,3], and
// position. Row may be negative while the piece is in the spawn buffer.
type ActivePiece struct {
	Type     PieceType
	Rotation int
	Row, Col int
}

// Cells returns the absolute board positions occupied by the piece.
func (p ActivePiece) Cells() []Offset {
	return p.cellsAt(p.Rotation, p.Row, p.Col)
}

// cellsAt returns the absolute positions the piece would occupy with the
// given rotation state and position, without mutating the piece.
func (p ActivePiece) cellsAt(rotation, row, col int) []Offset {
	shape := Shape(p.Type, rotation)
	cells := make([]Offset, len(shape))
	for i, o := range shape {
		cells[i] = Offset{Row: row + o.Row, Col: col + o.Col}
	}
	return cells
}
