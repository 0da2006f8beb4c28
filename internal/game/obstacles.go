package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Pair is a vertical obstacle with a gap the body must pass through.
// The lower segment spans [0, GapY), the upper one [GapY+GapHeight, top).
type Pair struct {
	X         float64 // Left edge
	GapY      float64 // Lower edge of the gap
	GapHeight float64 // Frozen when the pair is spawned
	Width     float64
	Passed    bool // Point already credited for this spawn
}

// Right returns the x-coordinate of the right edge.
func (p Pair) Right() float64 {
	return p.X + p.Width
}

// GapTop returns the upper edge of the gap.
func (p Pair) GapTop() float64 {
	return p.GapY + p.GapHeight
}

// OffScreen reports whether the pair has fully left the visible area.
func (p Pair) OffScreen() bool {
	return p.X < -p.Width
}

// Field owns the two active pairs, moves them and recycles them.
type Field struct {
	pairs  [2]Pair
	rng    *rand.Rand
	worldW float64
	worldH float64
	speed  float64
	cfg    config.FlappyObstacles
}

// NewField creates a field for the given world and places the pairs.
func NewField(rng *rand.Rand, worldW, worldH, speed float64, cfg config.FlappyObstacles) *Field {
	f := &Field{
		rng:   rng,
		speed: speed,
		cfg:   cfg,
	}
	f.Reset(worldW, worldH)
	return f
}

// Reset places the pairs at the right edge and one spacing further,
// with fresh offsets and the score-zero gap.
func (f *Field) Reset(worldW, worldH float64) {
	f.worldW = worldW
	f.worldH = worldH
	f.pairs[0] = f.spawn(worldW, 0)
	f.pairs[1] = f.spawn(worldW+f.Spacing(), 0)
}

// Spacing returns the horizontal distance between consecutive pairs.
func (f *Field) Spacing() float64 {
	return f.cfg.HorizontalGap(f.worldW)
}

// Advance moves every pair left and recycles the ones that left the screen.
// Recycled pairs take their gap height from the given score.
// Returns the number of recycled pairs.
func (f *Field) Advance(score int) int {
	for i := range f.pairs {
		f.pairs[i].X -= f.speed
	}

	recycled := 0
	for i := range f.pairs {
		if f.pairs[i].OffScreen() {
			f.pairs[i] = f.spawn(f.recycleX(), score)
			recycled++
		}
	}
	return recycled
}

// recycleX returns the spawn position right of every active pair.
func (f *Field) recycleX() float64 {
	rightmost := f.pairs[0].X
	for _, p := range f.pairs[1:] {
		rightmost = max(rightmost, p.X)
	}
	return max(f.worldW, rightmost+f.Spacing())
}

func (f *Field) spawn(x float64, score int) Pair {
	height := f.cfg.Gap.Height(score)
	return Pair{
		X:         x,
		GapY:      f.randomGapY(height),
		GapHeight: height,
		Width:     f.cfg.Width,
	}
}

// randomGapY draws the gap offset uniformly from the band that keeps both
// segments on screen with their margins. An empty band collapses to its
// lower bound.
func (f *Field) randomGapY(height float64) float64 {
	lo := f.cfg.BottomMargin
	hi := f.worldH - f.cfg.TopMargin - height
	if hi <= lo {
		return lo
	}
	return lo + f.rng.Float64()*(hi-lo)
}

// Pairs returns a copy of the active pairs.
func (f *Field) Pairs() [2]Pair {
	return f.pairs
}
