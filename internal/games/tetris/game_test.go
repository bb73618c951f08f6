package tetris

import (
	"testing"

	"github.com/blockfall/blockfall/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs stay in lockstep.
	g1 := New()
	g1.Reset(testRuntime(12345))
	g2 := New()
	g2.Reset(testRuntime(12345))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch {
		case i%40 == 10:
			input.Set(core.ActionLeft)
		case i%40 == 20:
			input.Set(core.ActionRotateCW)
		case i%40 == 30:
			input.Set(core.ActionSoftDrop)
		case i == 150:
			input.Set(core.ActionHardDrop)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1 := g1.session.Snapshot()
	s2 := g2.session.Snapshot()

	if s1.Score != s2.Score {
		t.Errorf("score mismatch: %d vs %d", s1.Score, s2.Score)
	}
	if s1.Lines != s2.Lines {
		t.Errorf("lines mismatch: %d vs %d", s1.Lines, s2.Lines)
	}
	if s1.Board != s2.Board {
		t.Error("board mismatch")
	}
	if s1.Active != nil && s2.Active != nil {
		if s1.Active.Type != s2.Active.Type || s1.Active.Row != s2.Active.Row || s1.Active.Col != s2.Active.Col {
			t.Errorf("active piece mismatch: %+v vs %+v", s1.Active, s2.Active)
		}
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.session.Status() != StatusPaused {
		t.Fatalf("status after pause = %s", g.session.Status())
	}
	if !g.State().Paused {
		t.Error("State().Paused false while paused")
	}

	g.Step(input)
	if g.session.Status() != StatusPlaying {
		t.Fatalf("status after unpause = %s", g.session.Status())
	}
}

func TestInputMapping(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	forceActive(g.session, PieceT)

	col := g.session.active.Col
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)
	if g.session.active.Col != col-1 {
		t.Errorf("col after left = %d, want %d", g.session.active.Col, col-1)
	}

	input.Clear()
	input.Set(core.ActionRotateCW)
	g.Step(input)
	if g.session.active.Rotation != 1 {
		t.Errorf("rotation after CW = %d, want 1", g.session.active.Rotation)
	}
}

func TestSprintWin(t *testing.T) {
	g := NewSprint()
	g.Reset(testRuntime(3))

	g.session.lines = sprintGoal
	g.Step(core.NewInputFrame())

	if !g.Won() {
		t.Fatal("sprint not won at goal")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver false after win")
	}
	if g.State().Paused {
		t.Error("win reported as paused")
	}

	// Inputs after the win are ignored.
	active := g.session.active
	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	g.Step(input)
	if g.session.active != active {
		t.Error("input processed after win")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(4))

	for c := 0; c < BoardCols; c++ {
		g.session.grid[0][c] = cellFor(PieceL)
	}
	g.session.spawn(PieceT)
	if g.session.Status() != StatusGameOver {
		t.Fatal("setup did not end the game")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.session.Status() != StatusPlaying {
		t.Fatalf("status after restart = %s", g.session.Status())
	}
	if g.session.Score() != 0 || g.session.Lines() != 0 {
		t.Error("restart did not reset score")
	}
}

func TestMarathonNeverWins(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	g.session.lines = sprintGoal + 10
	g.Step(core.NewInputFrame())
	if g.Won() {
		t.Error("marathon game reported a win")
	}
}

func TestTooSmallScreenBlocksPlay(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 6, ScreenW: 20, ScreenH: 10, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("small screen not detected")
	}
	row := g.session.active.Row
	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	g.Step(input)
	if g.session.active.Row != row {
		t.Error("input processed on too-small screen")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The board border should be present.
	if screen.Get(boardX, boardY) != '┌' {
		t.Errorf("board corner = %q", screen.Get(boardX, boardY))
	}
}

func TestStateFields(t *testing.T) {
	g := New()
	g.Reset(testRuntime(8))

	st := g.State()
	if st.GameOver || st.Paused {
		t.Error("fresh game reports over or paused")
	}
	if st.Level < 1 {
		t.Errorf("level = %d", st.Level)
	}
}
