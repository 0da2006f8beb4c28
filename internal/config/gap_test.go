package config

import "testing"

func TestGapScheduleHeight(t *testing.T) {
	g := DefaultFlappyConfig().Obstacles.Gap

	tests := []struct {
		score int
		want  float64
	}{
		{0, 9},
		{10, 9}, // strictly above 10 is required
		{11, 8.5},
		{21, 8},
		{31, 7.5},
		{40, 7.5},
		{45, 7},
		{51, 6.5},
		{500, 6.5},
	}

	for _, tc := range tests {
		if got := g.Height(tc.score); got != tc.want {
			t.Errorf("Height(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestGapScheduleNonIncreasing(t *testing.T) {
	g := DefaultFlappyConfig().Obstacles.Gap
	prev := g.Height(0)
	for score := 1; score <= 100; score++ {
		h := g.Height(score)
		if h > prev {
			t.Fatalf("gap widened from %v to %v at score %d", prev, h, score)
		}
		prev = h
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultFlappyConfig()

	easy := DefaultFlappyConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Obstacles.Gap.Height(45) != base.Obstacles.Gap.Height(45)+presetGapShift {
		t.Errorf("easy should widen gaps, got %v", easy.Obstacles.Gap.Height(45))
	}

	hard := DefaultFlappyConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Obstacles.Gap.Height(0) != base.Obstacles.Gap.Height(0)-presetGapShift {
		t.Errorf("hard should narrow gaps, got %v", hard.Obstacles.Gap.Height(0))
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	fixed := DefaultFlappyConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Obstacles.Gap.Height(100) != base.Obstacles.Gap.Base {
		t.Errorf("fixed should keep base gap, got %v", fixed.Obstacles.Gap.Height(100))
	}

	// Presets must not alias the tiers of another config.
	if base.Obstacles.Gap.Tiers[0].Height != DefaultFlappyConfig().Obstacles.Gap.Tiers[0].Height {
		t.Error("preset mutated shared tiers")
	}
}
