package config

import (
	"fmt"
	"slices"
)

// presetGapShift is how much easy/hard widen or narrow every gap.
const presetGapShift = 1.0

// minPlayableGap keeps presets from shrinking gaps below the body.
const minPlayableGap = 3.0

// GapTier narrows the gap once the score is strictly above Above.
type GapTier struct {
	Above  int     `yaml:"above"`
	Height float64 `yaml:"height"`
}

// GapSchedule maps the score to the vertical gap height of newly spawned
// pairs. It is a non-increasing step function of the score.
type GapSchedule struct {
	Base  float64   `yaml:"base"`
	Tiers []GapTier `yaml:"tiers"`
}

// Height returns the gap height for a pair spawned at the given score.
func (g GapSchedule) Height(score int) float64 {
	h := g.Base
	for _, t := range g.Tiers {
		if score > t.Above && t.Height < h {
			h = t.Height
		}
	}
	return h
}

// Validate checks that tiers are ordered and never widen the gap.
func (g GapSchedule) Validate() error {
	if g.Base <= 0 {
		return fmt.Errorf("obstacles.gap.base must be positive, got %v", g.Base)
	}
	prev := g.Base
	for i, t := range g.Tiers {
		if i > 0 && t.Above <= g.Tiers[i-1].Above {
			return fmt.Errorf("obstacles.gap.tiers[%d]: above (%d) must increase", i, t.Above)
		}
		if t.Height <= 0 || t.Height > prev {
			return fmt.Errorf("obstacles.gap.tiers[%d]: height %v must be positive and not exceed %v", i, t.Height, prev)
		}
		prev = t.Height
	}
	return nil
}

// ApplyPreset adjusts the gap schedule for a difficulty preset.
// Easy widens every gap, hard narrows it, fixed disables the tiers.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	gap := &cfg.Obstacles.Gap
	switch preset {
	case DifficultyEasy:
		gap.shift(presetGapShift)
	case DifficultyHard:
		gap.shift(-presetGapShift)
	case DifficultyFixed:
		gap.Tiers = nil
	}
}

func (g *GapSchedule) shift(delta float64) {
	g.Base = max(g.Base+delta, minPlayableGap)
	tiers := slices.Clone(g.Tiers)
	for i := range tiers {
		tiers[i].Height = max(tiers[i].Height+delta, minPlayableGap)
	}
	g.Tiers = tiers
}
