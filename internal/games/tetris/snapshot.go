package tetris

import "time"

// ActiveView describes the falling piece in a snapshot.
type ActiveView struct {
	Type     PieceType
	Rotation int
	Row      int
	Col      int
	Cells    []Offset
}

// Snapshot captures the complete session state for rendering, persistence
// and determinism testing.
type Snapshot struct {
	Status   Status
	Board    [BoardRows][BoardCols]Cell
	Active   *ActiveView
	GhostRow int
	Next     []PieceType
	Hold     *PieceType
	HoldUsed bool
	Score    int
	Level    int
	Lines    int
	Duration time.Duration
}

// Snapshot returns a deep copy of observable session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:   s.status,
		Board:    s.grid,
		Next:     s.queue.peek(),
		HoldUsed: s.holdUsed,
		Score:    s.score,
		Level:    s.level,
		Lines:    s.lines,
		Duration: s.Duration(),
	}
	if s.hasActive {
		snap.Active = &ActiveView{
			Type:     s.active.Type,
			Rotation: s.active.Rotation,
			Row:      s.active.Row,
			Col:      s.active.Col,
			Cells:    s.active.Cells(),
		}
		if row, ok := s.GhostRow(); ok {
			snap.GhostRow = row
		}
	}
	if s.hasHold {
		h := s.hold
		snap.Hold = &h
	}
	return snap
}
