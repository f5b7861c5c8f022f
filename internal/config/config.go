// Package config provides YAML-based configuration loading for Linkfall.
package config

import (
	"errors"
	"fmt"

	"github.com/linkfall-game/linkfall/internal/games/linkfall/engine"
)

// ModeClassic is the board key used when a mode has no board of its own.
const ModeClassic = "linkfall"

// LinkfallConfig contains all configuration for the game.
type LinkfallConfig struct {
	Boards  map[string]BoardConfig `yaml:"boards"`
	Piece   PieceConfig            `yaml:"piece"`
	Targets TargetConfig           `yaml:"targets"`
}

// BoardConfig defines the field dimensions of one game mode.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"` // Playable rows, floor excluded
}

// PieceConfig defines falling piece parameters.
type PieceConfig struct {
	FallSpeed float64 `yaml:"fall_speed"` // Rows per second
}

// TargetConfig defines target placement parameters.
type TargetConfig struct {
	Count       int `yaml:"count"`
	MaxAttempts int `yaml:"max_attempts"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Board returns the board for a mode, falling back to the classic board.
func (c LinkfallConfig) Board(mode string) BoardConfig {
	if b, ok := c.Boards[mode]; ok {
		return b
	}
	if b, ok := c.Boards[ModeClassic]; ok {
		return b
	}
	return DefaultLinkfallConfig().Boards[ModeClassic]
}

// Validate checks that every value is usable by the simulation.
func (c LinkfallConfig) Validate() error {
	if len(c.Boards) == 0 {
		return fmt.Errorf("%w: no boards defined", ErrInvalidConfig)
	}
	for mode, b := range c.Boards {
		if b.Width < engine.MinWidth || b.Height < engine.MinHeight {
			return fmt.Errorf("%w: board %q is %dx%d, minimum is %dx%d",
				ErrInvalidConfig, mode, b.Width, b.Height, engine.MinWidth, engine.MinHeight)
		}
	}
	if c.Piece.FallSpeed <= 0 {
		return fmt.Errorf("%w: fall_speed must be positive, got %v", ErrInvalidConfig, c.Piece.FallSpeed)
	}
	if c.Targets.Count < 1 {
		return fmt.Errorf("%w: targets.count must be at least 1, got %d", ErrInvalidConfig, c.Targets.Count)
	}
	if c.Targets.MaxAttempts < 1 {
		return fmt.Errorf("%w: targets.max_attempts must be at least 1, got %d", ErrInvalidConfig, c.Targets.MaxAttempts)
	}
	return nil
}
