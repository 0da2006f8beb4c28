package game

// Collision and scoring are pure functions of the current geometry.
// Exact edge comparisons decide frame-perfect outcomes:
//   - a pair is passed only once its right edge is strictly left of the body;
//   - horizontal overlap includes touching edges;
//   - inside an overlap, leaving the gap by any amount is a hit.

// cleared reports whether the pair is fully behind the body.
func cleared(b Body, p Pair) bool {
	return p.Right() < b.Left()
}

// overlapsHorizontally reports whether the body and the pair share any column,
// touching edges included.
func overlapsHorizontally(b Body, p Pair) bool {
	return !(b.Right() < p.X || b.Left() > p.Right())
}

// hitsPair reports whether the body touches either segment of the pair.
func hitsPair(b Body, p Pair) bool {
	if !overlapsHorizontally(b, p) {
		return false
	}
	return b.Y < p.GapY || b.Top() > p.GapTop()
}

// hitsBounds reports whether the body touches the floor or the ceiling.
func hitsBounds(b Body, ceiling float64) bool {
	return b.Y <= 0 || b.Top() >= ceiling
}

// awardPasses marks every newly cleared pair as passed and returns how many
// points that earns. A pair pays at most once per spawn.
func awardPasses(b Body, pairs []Pair) int {
	points := 0
	for i := range pairs {
		if !pairs[i].Passed && cleared(b, pairs[i]) {
			pairs[i].Passed = true
			points++
		}
	}
	return points
}

// collides reports whether the body hit any pair or a world boundary.
func collides(b Body, pairs []Pair, ceiling float64) bool {
	for _, p := range pairs {
		if hitsPair(b, p) {
			return true
		}
	}
	return hitsBounds(b, ceiling)
}
