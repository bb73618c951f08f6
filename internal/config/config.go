// Package config provides YAML-based game configuration loading and
// difficulty presets for the blockfall platform.
package config

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Gameplay TetrisGameplay `yaml:"gameplay"`
}

// TetrisGameplay defines the tunable gameplay parameters.
type TetrisGameplay struct {
	// PreviewCount is the next-queue length shown in the sidebar.
	// Values below 3 are treated as 3.
	PreviewCount int `yaml:"preview_count"`
	// GhostPiece toggles the landing-position preview.
	GhostPiece bool `yaml:"ghost_piece"`
	// StartLevel is the level the session begins at.
	StartLevel int `yaml:"start_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the start level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 7
	default:
		return 1
	}
}
