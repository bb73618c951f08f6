package tetris

import (
	"math/rand"
	"time"
)

// Status is the session lifecycle phase.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "gameover"
)

// Dir is a horizontal or downward move direction for the active piece.
type Dir int

const (
	DirLeft Dir = iota
	DirRight
	DirDown
)

// Spin is a rotation direction.
type Spin int

const (
	SpinCW Spin = iota
	SpinCCW
)

// lineClearPoints maps cleared-line count to base points, multiplied by the
// level in effect before the clear is applied.
var lineClearPoints = [5]int{0, 100, 300, 500, 800}

const (
	baseTickInterval = 1000 * time.Millisecond
	minTickInterval  = 100 * time.Millisecond
	tickIntervalStep = 85 * time.Millisecond

	linesPerLevel = 10

	minPreview     = 3
	defaultPreview = 3
)

// TickInterval returns the gravity period for a level. It shrinks linearly
// with the level and never drops below the minimum.
func TickInterval(level int) time.Duration {
	d := baseTickInterval - time.Duration(level-1)*tickIntervalStep
	if d < minTickInterval {
		return minTickInterval
	}
	return d
}

// Config controls a new session. The zero value is usable: a time-derived
// seed, the default preview length and start level 1.
type Config struct {
	// Seed fixes the piece sequence. Zero picks a seed from the clock.
	Seed int64
	// Preview is the next-queue length, clamped to the minimum of 3.
	Preview int
	// StartLevel is the initial level, clamped to at least 1.
	StartLevel int
}

func (c Config) normalized() Config {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Preview < minPreview {
		c.Preview = defaultPreview
	}
	if c.StartLevel < 1 {
		c.StartLevel = 1
	}
	return c
}

// Session is a single falling-block game. All methods are synchronous and
// deterministic given the seed; the caller drives gravity by calling Tick at
// the cadence reported by TickInterval.
type Session struct {
	cfg Config
	rng *rand.Rand
	now func() time.Time

	grid      Grid
	active    ActivePiece
	hasActive bool

	bag   *bag
	queue *nextQueue

	hold     PieceType
	hasHold  bool
	holdUsed bool

	score  int
	level  int
	lines  int
	status Status

	startedAt time.Time
	pausedAt  time.Time
	endedAt   time.Time
	pausedFor time.Duration
}

// NewSession builds a session in the idle state. Nothing moves until Start.
func NewSession(cfg Config) *Session {
	cfg = cfg.normalized()
	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		now:    time.Now,
		level:  cfg.StartLevel,
		status: StatusIdle,
	}
	s.bag = newBag(s.rng)
	s.queue = newNextQueue(s.bag, cfg.Preview)
	return s
}

// Start begins play, spawning the first piece. It is a no-op unless the
// session is idle.
func (s *Session) Start() {
	if s.status != StatusIdle {
		return
	}
	s.status = StatusPlaying
	s.startedAt = s.now()
	s.spawn(s.queue.dequeue())
}

// Pause freezes the session. Gravity and input are rejected until Resume.
func (s *Session) Pause() {
	if s.status != StatusPlaying {
		return
	}
	s.status = StatusPaused
	s.pausedAt = s.now()
}

// Resume continues a paused session. Time spent paused is excluded from the
// reported duration.
func (s *Session) Resume() {
	if s.status != StatusPaused {
		return
	}
	s.pausedFor += s.now().Sub(s.pausedAt)
	s.status = StatusPlaying
}

// Move shifts the active piece one cell. A blocked left or right move is
// ignored. A blocked down move locks the piece. A down move accepted while
// playing awards one soft-drop point per row.
func (s *Session) Move(d Dir) {
	if s.status != StatusPlaying || !s.hasActive {
		return
	}
	switch d {
	case DirLeft, DirRight:
		dc := -1
		if d == DirRight {
			dc = 1
		}
		cells := s.active.cellsAt(s.active.Rotation, s.active.Row, s.active.Col+dc)
		if s.grid.IsValid(cells) {
			s.active.Col += dc
		}
	case DirDown:
		cells := s.active.cellsAt(s.active.Rotation, s.active.Row+1, s.active.Col)
		if s.grid.IsValid(cells) {
			s.active.Row++
			s.score++
		} else {
			s.lockActive(0)
		}
	}
}

// Rotate turns the active piece, trying each wall-kick offset for the
// rotation transition in order and keeping the first that fits. The piece is
// unchanged when every offset is blocked. The O piece never rotates.
func (s *Session) Rotate(sp Spin) {
	if s.status != StatusPlaying || !s.hasActive {
		return
	}
	if s.active.Type == PieceO {
		return
	}
	from := s.active.Rotation
	to := (from + 1) % 4
	if sp == SpinCCW {
		to = (from + 3) % 4
	}
	for _, k := range kickCandidates(s.active.Type, from, to) {
		cells := s.active.cellsAt(to, s.active.Row+k.Row, s.active.Col+k.Col)
		if s.grid.IsValid(cells) {
			s.active.Rotation = to
			s.active.Row += k.Row
			s.active.Col += k.Col
			return
		}
	}
}

// HardDrop sends the active piece straight down to its resting row, awards
// two points per row traveled, and locks it immediately.
func (s *Session) HardDrop() {
	if s.status != StatusPlaying || !s.hasActive {
		return
	}
	dropped := 0
	for {
		cells := s.active.cellsAt(s.active.Rotation, s.active.Row+1, s.active.Col)
		if !s.grid.IsValid(cells) {
			break
		}
		s.active.Row++
		dropped++
	}
	s.lockActive(2 * dropped)
}

// Hold swaps the active piece with the held one, or stashes it and spawns
// from the queue when nothing is held yet. At most one hold is allowed per
// piece placement. The swapped-in piece respawns at the top.
func (s *Session) Hold() {
	if s.status != StatusPlaying || !s.hasActive || s.holdUsed {
		return
	}
	cur := s.active.Type
	if s.hasHold {
		next := s.hold
		s.hold = cur
		s.spawn(next)
	} else {
		s.hold = cur
		s.hasHold = true
		s.spawn(s.queue.dequeue())
	}
	s.holdUsed = true
}

// Tick applies one gravity step: the active piece falls one row, locking when
// it cannot. Gravity awards no points.
func (s *Session) Tick() {
	if s.status != StatusPlaying || !s.hasActive {
		return
	}
	cells := s.active.cellsAt(s.active.Rotation, s.active.Row+1, s.active.Col)
	if s.grid.IsValid(cells) {
		s.active.Row++
		return
	}
	s.lockActive(0)
}

// GhostRow returns the row the active piece would occupy after a hard drop.
// It reports false when no piece is active.
func (s *Session) GhostRow() (int, bool) {
	if !s.hasActive {
		return 0, false
	}
	row := s.active.Row
	for s.grid.IsValid(s.active.cellsAt(s.active.Rotation, row+1, s.active.Col)) {
		row++
	}
	return row, true
}

// Duration is wall-clock play time excluding paused intervals. It freezes at
// its final value when the game ends.
func (s *Session) Duration() time.Duration {
	if s.status == StatusIdle {
		return 0
	}
	end := s.now()
	switch s.status {
	case StatusPaused:
		end = s.pausedAt
	case StatusGameOver:
		end = s.endedAt
	}
	return end.Sub(s.startedAt) - s.pausedFor
}

// Status returns the lifecycle phase.
func (s *Session) Status() Status { return s.status }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Lines returns the total cleared line count.
func (s *Session) Lines() int { return s.lines }

// Interval returns the gravity period at the current level.
func (s *Session) Interval() time.Duration { return TickInterval(s.level) }

// spawn places a new active piece at the spawn position. A spawn that
// collides with settled cells ends the game with the piece left unspawned.
func (s *Session) spawn(t PieceType) {
	p := ActivePiece{Type: t, Rotation: 0, Row: SpawnRow, Col: SpawnCol}
	if !s.grid.IsValid(p.Cells()) {
		s.hasActive = false
		s.setGameOver()
		return
	}
	s.active = p
	s.hasActive = true
}

// lockActive settles the active piece and runs the placement pipeline:
// buffer-zone check, line clears, scoring against the pre-clear level, level
// recomputation and the next spawn.
func (s *Session) lockActive(dropBonus int) {
	for _, c := range s.active.Cells() {
		if c.Row < 0 {
			s.hasActive = false
			s.setGameOver()
			return
		}
	}
	s.grid.Lock(s.active.Cells(), cellFor(s.active.Type))
	s.hasActive = false

	cleared := s.grid.ClearFullLines()
	s.score += lineClearPoints[cleared]*s.level + dropBonus
	s.lines += cleared
	s.level = s.cfg.StartLevel + s.lines/linesPerLevel

	s.holdUsed = false
	s.spawn(s.queue.dequeue())
}

func (s *Session) setGameOver() {
	s.status = StatusGameOver
	s.endedAt = s.now()
}
