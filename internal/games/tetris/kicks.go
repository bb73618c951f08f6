package tetris

// Wall-kick tables in the Super Rotation System. Each (from, to) rotation
// transition has an ordered list of (row, col) displacement candidates; the
// first candidate that produces a valid position is applied, and the rotation
// fails silently if none do. Offsets are converted from the usual SRS (x, y)
// notation to board coordinates, where row grows downward.
//
// The O piece needs no table: its rotation states are spatially identical.

type kickKey struct {
	from, to int
}

// kicksJLSTZ covers the J, L, S, T and Z pieces.
var kicksJLSTZ = map[kickKey][]Offset{
	{0, 1}: {{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	{1, 0}: {{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	{1, 2}: {{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	{2, 1}: {{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	{2, 3}: {{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},
	{3, 2}: {{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
	{3, 0}: {{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
	{0, 3}: {{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},
}

// kicksI covers the I piece, whose elongated shape needs its own offsets.
var kicksI = map[kickKey][]Offset{
	{0, 1}: {{0, 0}, {0, -2}, {0, 1}, {1, -2}, {-2, 1}},
	{1, 0}: {{0, 0}, {0, 2}, {0, -1}, {-1, 2}, {2, -1}},
	{1, 2}: {{0, 0}, {0, -1}, {0, 2}, {-2, -1}, {1, 2}},
	{2, 1}: {{0, 0}, {0, 1}, {0, -2}, {2, 1}, {-1, -2}},
	{2, 3}: {{0, 0}, {0, 2}, {0, -1}, {-1, 2}, {2, -1}},
	{3, 2}: {{0, 0}, {0, -2}, {0, 1}, {1, -2}, {-2, 1}},
	{3, 0}: {{0, 0}, {0, 1}, {0, -2}, {2, 1}, {-1, -2}},
	{0, 3}: {{0, 0}, {0, -1}, {0, 2}, {-2, -1}, {1, 2}},
}

// kickCandidates returns the ordered displacement candidates for rotating the
// given piece type from one rotation state to another.
func kickCandidates(t PieceType, from, to int) []Offset {
	key := kickKey{from: from, to: to}
	if t == PieceI {
		return kicksI[key]
	}
	return kicksJLSTZ[key]
}
