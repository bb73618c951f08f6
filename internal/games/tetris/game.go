package tetris

import (
	"time"

	"github.com/blockfall/blockfall/internal/config"
	"github.com/blockfall/blockfall/internal/core"
	"github.com/blockfall/blockfall/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon"
	ModeSprint   Mode = "sprint"
)

// sprintGoal is the line count that wins a sprint game.
const sprintGoal = 40

// Minimum screen size for the board plus sidebar.
const (
	minScreenW = 44
	minScreenH = 24
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// Game adapts a Session to the platform game interface: it maps platform
// actions to session moves and drives gravity from the fixed tick rate.
type Game struct {
	mode    Mode
	session *Session
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig

	// stepDt is the wall-clock time one platform tick represents.
	stepDt     time.Duration
	gravityAcc time.Duration

	won      bool
	tooSmall bool
}

// New creates a marathon mode game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewSprint creates a sprint mode game, won by clearing 40 lines.
func NewSprint() *Game {
	return &Game{mode: ModeSprint}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_sprint", func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSprint {
		return "tetris_sprint"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Tetris (Sprint)"
	}
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.stepDt = time.Second / time.Duration(tickRate)
	g.gravityAcc = 0
	g.won = false
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.session = NewSession(Config{
		Seed:       runtime.Seed,
		Preview:    cfg.Gameplay.PreviewCount,
		StartLevel: cfg.Gameplay.StartLevel,
	})
	g.session.Start()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	s := g.session

	// Handle restart
	if input.Has(core.ActionRestart) && (s.Status() == StatusGameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.runtime.Seed + 1,
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.won {
		switch s.Status() {
		case StatusPlaying:
			s.Pause()
		case StatusPaused:
			s.Resume()
		}
	}

	if s.Status() != StatusPlaying || g.won || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Player actions
	if input.Has(core.ActionLeft) {
		s.Move(DirLeft)
	}
	if input.Has(core.ActionRight) {
		s.Move(DirRight)
	}
	if input.Has(core.ActionRotateCW) {
		s.Rotate(SpinCW)
	}
	if input.Has(core.ActionRotateCCW) {
		s.Rotate(SpinCCW)
	}
	if input.Has(core.ActionSoftDrop) {
		s.Move(DirDown)
	}
	if input.Has(core.ActionHardDrop) {
		s.HardDrop()
	}
	if input.Has(core.ActionHold) {
		s.Hold()
	}

	// Gravity: accumulate wall-clock time and fall whenever a full
	// interval at the current level has elapsed.
	g.gravityAcc += g.stepDt
	for g.gravityAcc >= s.Interval() && s.Status() == StatusPlaying {
		g.gravityAcc -= s.Interval()
		s.Tick()
	}

	g.checkWin()

	return core.StepResult{State: g.State()}
}

// checkWin ends a sprint game once the goal is reached. The session is
// paused so the clock stops at the finish time.
func (g *Game) checkWin() {
	if g.mode != ModeSprint || g.won {
		return
	}
	if g.session.Lines() >= sprintGoal && g.session.Status() == StatusPlaying {
		g.won = true
		g.session.Pause()
	}
}

// Won reports whether a sprint game has been completed.
func (g *Game) Won() bool { return g.won }

// Session exposes the underlying engine session.
func (g *Game) Session() *Session { return g.session }

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:        s.Score(),
		Level:        s.Level(),
		Lines:        s.Lines(),
		DurationSecs: int(s.Duration() / time.Second),
		GameOver:     s.Status() == StatusGameOver || g.won,
		Paused:       s.Status() == StatusPaused && !g.won,
	}
}
