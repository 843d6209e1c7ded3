// Package config provides YAML-based game configuration loading and
// difficulty management for the blocks game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Input      InputConfig      `yaml:"input"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Width             int `yaml:"width"`
	Height            int `yaml:"height"`
	VisibleBufferRows int `yaml:"visible_buffer_rows"`
}

// InputConfig defines rotation key repeat.
type InputConfig struct {
	RotateInitialDelayMs int `yaml:"rotate_initial_delay_ms"`
	RotateRepeatDelayMs  int `yaml:"rotate_repeat_delay_ms"`
}

// TimingConfig defines gravity and lock delay.
type TimingConfig struct {
	GravityMs     int `yaml:"gravity_ms"`     // Fall interval at difficulty 0
	MinGravityMs  int `yaml:"min_gravity_ms"` // Fastest fall interval
	LockDelayMs   int `yaml:"lock_delay_ms"`
	MaxLockResets int `yaml:"max_lock_resets"`
}

// ScoringConfig defines line-clear and drop scoring.
type ScoringConfig struct {
	LinesPerLevel   int   `yaml:"lines_per_level"`
	Lines           []int `yaml:"lines"` // Points for 1..4 rows, multiplied by level
	Combo           int   `yaml:"combo"`
	SoftDrop        int   `yaml:"soft_drop"`
	HardDrop        int   `yaml:"hard_drop"`
	GlassMultiplier int   `yaml:"glass_multiplier"`
}

// PiecesConfig defines the randomizer.
type PiecesConfig struct {
	Extended bool `yaml:"extended"` // Adds the X piece to every bag
	Glass    bool `yaml:"glass"`    // One glass piece per bag
	Preview  int  `yaml:"preview"`  // Upcoming pieces shown
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
}

// RotateInitialDelay returns the first-press rotation delay.
func (c BlocksConfig) RotateInitialDelay() time.Duration {
	return time.Duration(c.Input.RotateInitialDelayMs) * time.Millisecond
}

// RotateRepeatDelay returns the held-key rotation delay.
func (c BlocksConfig) RotateRepeatDelay() time.Duration {
	return time.Duration(c.Input.RotateRepeatDelayMs) * time.Millisecond
}

// LockDelay returns the lock grace period.
func (c BlocksConfig) LockDelay() time.Duration {
	return time.Duration(c.Timing.LockDelayMs) * time.Millisecond
}

// Validate rejects configurations the game cannot run with.
func (c BlocksConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board.width %d is below 4", c.Board.Width))
	}
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height %d is below 4", c.Board.Height))
	}
	if c.Board.VisibleBufferRows < 0 || c.Board.VisibleBufferRows > c.Board.Height {
		errs = append(errs, fmt.Errorf("board.visible_buffer_rows %d out of range", c.Board.VisibleBufferRows))
	}
	if c.Input.RotateInitialDelayMs < 0 || c.Input.RotateRepeatDelayMs < 0 {
		errs = append(errs, errors.New("input delays must not be negative"))
	}
	if c.Timing.GravityMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.gravity_ms %d must be positive", c.Timing.GravityMs))
	}
	if c.Timing.MinGravityMs <= 0 || c.Timing.MinGravityMs > c.Timing.GravityMs {
		errs = append(errs, fmt.Errorf("timing.min_gravity_ms %d must be in (0, gravity_ms]", c.Timing.MinGravityMs))
	}
	if c.Timing.LockDelayMs < 0 || c.Timing.MaxLockResets < 0 {
		errs = append(errs, errors.New("lock delay settings must not be negative"))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("scoring.lines_per_level %d must be positive", c.Scoring.LinesPerLevel))
	}
	if len(c.Scoring.Lines) != 4 {
		errs = append(errs, fmt.Errorf("scoring.lines needs 4 entries, got %d", len(c.Scoring.Lines)))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
