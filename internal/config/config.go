// Package config provides YAML-based game configuration loading and the
// score-driven gap schedule.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunable parameters of the game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Body      FlappyBody      `yaml:"body"`
	World     FlappyWorld     `yaml:"world"`
	Timing    FlappyTiming    `yaml:"timing"`
	Ledger    FlappyLedger    `yaml:"ledger"`
	Sound     FlappySound     `yaml:"sound"`
}

// FlappyPhysics defines the integrator constants.
type FlappyPhysics struct {
	Gravity         float64 `yaml:"gravity"`          // Subtracted from velocity each tick
	JumpImpulse     float64 `yaml:"jump_impulse"`     // Velocity set by a jump (positive = up)
	HorizontalSpeed float64 `yaml:"horizontal_speed"` // Pair movement per tick
}

// FlappyObstacles defines obstacle pair geometry.
type FlappyObstacles struct {
	Width              float64     `yaml:"width"`
	HorizontalGapRatio float64     `yaml:"horizontal_gap_ratio"` // Share of world width between pairs
	HorizontalGapExtra float64     `yaml:"horizontal_gap_extra"` // Added on top of the ratio
	MinHorizontalGap   float64     `yaml:"min_horizontal_gap"`   // Lower bound for spacing
	TopMargin          float64     `yaml:"top_margin"`           // Minimum upper segment height
	BottomMargin       float64     `yaml:"bottom_margin"`        // Minimum lower segment height
	Gap                GapSchedule `yaml:"gap"`
}

// FlappyBody defines the controllable body.
type FlappyBody struct {
	Size float64 `yaml:"size"`
}

// FlappyWorld defines the playfield boundaries relative to the screen.
type FlappyWorld struct {
	GroundRows    int     `yaml:"ground_rows"`    // Rows below the floor reserved for the ground
	CeilingMargin float64 `yaml:"ceiling_margin"` // Distance from the top that counts as a hit
}

// FlappyTiming defines the clock.
type FlappyTiming struct {
	TickMillis int `yaml:"tick_ms"`
}

// FlappyLedger defines where the best score lives.
type FlappyLedger struct {
	Key string `yaml:"key"`
}

// FlappySound defines effect playback.
type FlappySound struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear gain, 1 is unity
}

// TickInterval returns the configured tick as a duration.
func (t FlappyTiming) TickInterval() time.Duration {
	return time.Duration(t.TickMillis) * time.Millisecond
}

// HorizontalGap returns the spacing between consecutive pairs for a world
// of the given width. Never less than MinHorizontalGap.
func (o FlappyObstacles) HorizontalGap(worldW float64) float64 {
	return max(o.MinHorizontalGap, worldW*o.HorizontalGapRatio+o.HorizontalGapExtra)
}

// Validate checks that the configuration describes a playable world.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse <= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be positive, got %v", c.Physics.JumpImpulse))
	}
	if c.Physics.HorizontalSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.horizontal_speed must be positive, got %v", c.Physics.HorizontalSpeed))
	}
	if reach := c.Obstacles.Width + c.Body.Size; c.Physics.HorizontalSpeed > reach {
		errs = append(errs, fmt.Errorf("physics.horizontal_speed (%v) must not exceed obstacles.width + body.size (%v)",
			c.Physics.HorizontalSpeed, reach))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.width must be positive, got %v", c.Obstacles.Width))
	}
	if c.Obstacles.MinHorizontalGap < c.Obstacles.Width {
		errs = append(errs, fmt.Errorf("obstacles.min_horizontal_gap (%v) must be at least obstacles.width (%v)",
			c.Obstacles.MinHorizontalGap, c.Obstacles.Width))
	}
	if c.Obstacles.TopMargin < 0 || c.Obstacles.BottomMargin < 0 {
		errs = append(errs, errors.New("obstacles margins must not be negative"))
	}
	if err := c.Obstacles.Gap.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Body.Size <= 0 {
		errs = append(errs, fmt.Errorf("body.size must be positive, got %v", c.Body.Size))
	}
	if c.World.GroundRows < 0 {
		errs = append(errs, fmt.Errorf("world.ground_rows must not be negative, got %d", c.World.GroundRows))
	}
	if c.Timing.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMillis))
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 2 {
		errs = append(errs, fmt.Errorf("sound.volume must be within [0, 2], got %v", c.Sound.Volume))
	}
	if c.Ledger.Key == "" {
		errs = append(errs, errors.New("ledger.key must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means keep the config.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
