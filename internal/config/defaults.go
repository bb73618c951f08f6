package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gameplay: TetrisGameplay{
			PreviewCount: 3,
			GhostPiece:   true,
			StartLevel:   1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_sprint":
		return defaultTetrisYAML
	default:
		return nil
	}
}
