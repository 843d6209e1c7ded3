package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:             10,
			Height:            20,
			VisibleBufferRows: 2,
		},
		Input: InputConfig{
			RotateInitialDelayMs: 100,
			RotateRepeatDelayMs:  200,
		},
		Timing: TimingConfig{
			GravityMs:     800,
			MinGravityMs:  50,
			LockDelayMs:   500,
			MaxLockResets: 15,
		},
		Scoring: ScoringConfig{
			LinesPerLevel:   10,
			Lines:           []int{100, 300, 500, 800},
			Combo:           50,
			SoftDrop:        1,
			HardDrop:        2,
			GlassMultiplier: 2,
		},
		Pieces: PiecesConfig{
			Extended: false,
			Glass:    true,
			Preview:  3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 12.0,
			},
		},
	}
}
