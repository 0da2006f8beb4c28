package game

import "fmt"

// Medal grades a finished session against the best score it started with.
type Medal int

const (
	MedalNone Medal = iota
	MedalBronze
	MedalSilver
	MedalGold
)

func (m Medal) String() string {
	switch m {
	case MedalBronze:
		return "bronze"
	case MedalSilver:
		return "silver"
	case MedalGold:
		return "gold"
	default:
		return "none"
	}
}

// Summary describes the session that just ended.
type Summary struct {
	Score    int
	Best     int // Best after the session was settled
	PrevBest int // Best before the session started
	Medal    Medal
}

// NewBest reports whether the session raised the best score.
func (s Summary) NewBest() bool {
	return s.Score > s.PrevBest
}

// medalFor grades score against the previous best.
// Beating it is gold, matching it silver, any other scoring run bronze.
func medalFor(score, prevBest int) Medal {
	switch {
	case score <= 0:
		return MedalNone
	case score > prevBest:
		return MedalGold
	case score == prevBest:
		return MedalSilver
	default:
		return MedalBronze
	}
}

// TwoDigits splits a score into the tens and units digits shown by the HUD.
// Scores of 100 or more keep only the last two digits.
func TwoDigits(n int) (tens, units int) {
	if n < 0 {
		n = 0
	}
	n %= 100
	return n / 10, n % 10
}

func formatScore(n int) string {
	tens, units := TwoDigits(n)
	return fmt.Sprintf("%d%d", tens, units)
}
