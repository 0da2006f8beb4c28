package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// Kept in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:         0.06,
			JumpImpulse:     0.8,
			HorizontalSpeed: 0.8,
		},
		Obstacles: FlappyObstacles{
			Width:              6,
			HorizontalGapRatio: 0.5,
			HorizontalGapExtra: 12,
			MinHorizontalGap:   20,
			TopMargin:          3,
			BottomMargin:       3,
			Gap: GapSchedule{
				Base: 9,
				Tiers: []GapTier{
					{Above: 10, Height: 8.5},
					{Above: 20, Height: 8},
					{Above: 30, Height: 7.5},
					{Above: 40, Height: 7},
					{Above: 50, Height: 6.5},
				},
			},
		},
		Body: FlappyBody{
			Size: 2,
		},
		World: FlappyWorld{
			GroundRows:    2,
			CeilingMargin: 1,
		},
		Timing: FlappyTiming{
			TickMillis: 30,
		},
		Ledger: FlappyLedger{
			Key: "bestScore",
		},
		Sound: FlappySound{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
