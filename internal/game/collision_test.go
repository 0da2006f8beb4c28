package game

import "testing"

func TestHitsPair(t *testing.T) {
	// Gap spans [8, 17] on a pair covering x in [40, 46].
	pair := Pair{X: 40, GapY: 8, GapHeight: 9, Width: 6}

	tests := []struct {
		name string
		body Body
		want bool
	}{
		{"inside gap", Body{X: 43, Y: 10, Size: 2}, false},
		{"flush with both gap edges", Body{X: 43, Y: 8, Size: 9}, false},
		{"below gap", Body{X: 43, Y: 7.99, Size: 2}, true},
		{"above gap", Body{X: 43, Y: 15.01, Size: 2}, true},
		{"touching left edge", Body{X: 39, Y: 2, Size: 2}, true},
		{"touching right edge", Body{X: 47, Y: 2, Size: 2}, true},
		{"just left of pair", Body{X: 38.99, Y: 2, Size: 2}, false},
		{"just right of pair", Body{X: 47.01, Y: 2, Size: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hitsPair(tt.body, pair); got != tt.want {
				t.Errorf("hitsPair() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHitsBounds(t *testing.T) {
	tests := []struct {
		name string
		body Body
		want bool
	}{
		{"mid air", Body{Y: 10, Size: 2}, false},
		{"on floor", Body{Y: 0, Size: 2}, true},
		{"just above floor", Body{Y: 0.001, Size: 2}, false},
		{"touching ceiling", Body{Y: 19, Size: 2}, true},
		{"below ceiling", Body{Y: 18.9, Size: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hitsBounds(tt.body, 21); got != tt.want {
				t.Errorf("hitsBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAwardPassesStrictEdge(t *testing.T) {
	body := Body{X: 40, Y: 10, Size: 2} // left edge at 39

	pairs := []Pair{{X: 33, Width: 6}} // right edge exactly 39
	if got := awardPasses(body, pairs); got != 0 {
		t.Errorf("touching edge scored %d, want 0", got)
	}

	pairs[0].X = 32.99
	if got := awardPasses(body, pairs); got != 1 {
		t.Errorf("cleared pair scored %d, want 1", got)
	}
	if !pairs[0].Passed {
		t.Error("pair should be marked passed")
	}
	if got := awardPasses(body, pairs); got != 0 {
		t.Errorf("pair scored again: %d", got)
	}
}

func TestAwardPassesBothPairs(t *testing.T) {
	body := Body{X: 40, Y: 10, Size: 2}
	pairs := []Pair{
		{X: 10, Width: 6},
		{X: 20, Width: 6, Passed: true},
	}
	if got := awardPasses(body, pairs); got != 1 {
		t.Errorf("awardPasses() = %d, want 1", got)
	}
}

func TestCollides(t *testing.T) {
	body := Body{X: 40, Y: 10, Size: 2}
	clear := []Pair{
		{X: 80, GapY: 3, GapHeight: 9, Width: 6},
		{X: 132, GapY: 3, GapHeight: 9, Width: 6},
	}
	if collides(body, clear, 21) {
		t.Error("body far from pairs should not collide")
	}

	blocked := []Pair{
		clear[0],
		{X: 38, GapY: 14, GapHeight: 5, Width: 6},
	}
	if !collides(body, blocked, 21) {
		t.Error("body below the second gap should collide")
	}

	if !collides(Body{X: 40, Y: 0, Size: 2}, clear, 21) {
		t.Error("body on the floor should collide")
	}
}
