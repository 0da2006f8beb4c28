package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BodyChar      = '●'
	BeakChar      = '▶'
	FlapChar      = '▲'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	GroundFill    = '░'
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	World   World
	Body    Body
	Pairs   [2]Pair
	State   core.GameState
	Overlay Overlay
	Summary Summary
	Flap    bool
	Ticks   int
}

// Snapshot copies the current simulation state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		World:   s.world,
		Body:    s.body,
		Pairs:   s.field.Pairs(),
		State:   s.State(),
		Overlay: s.overlay,
		Summary: s.summary,
		Flap:    s.flap > 0,
		Ticks:   s.ticks,
	}
}

// Summary returns the summary of the last finished session.
func (s *Session) Summary() Summary {
	return s.summary
}

// Render draws the current state to the screen.
func (s *Session) Render(dst *core.Screen) {
	Draw(dst, s.Snapshot())
}

// Draw renders a snapshot. Simulation space has its origin on the floor with
// y growing upward; a cell is filled when its centre lies inside a shape.
func Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	floorRow := int(snap.World.H)
	drawGround(dst, floorRow)

	for _, p := range snap.Pairs {
		drawPair(dst, snap.World, p)
	}
	drawBody(dst, snap.World, snap.Body, snap.Flap)

	st := snap.State
	if st.State == core.StateRunning || st.State == core.StatePaused {
		dst.DrawTextCentered(1, formatScore(st.Score), core.ColorWhite)
	}

	switch snap.Overlay {
	case OverlaySummary:
		drawSummary(dst, snap.Summary)
		return
	case OverlayBest:
		drawCenteredMessage(dst, core.ColorYellow,
			"BEST SCORE",
			formatScore(st.Best),
			"Enter: close  X: reset")
		return
	}

	switch st.State {
	case core.StateIdle:
		drawCenteredMessage(dst, core.ColorBrightGreen,
			"GET READY",
			fmt.Sprintf("Best %s", formatScore(st.Best)),
			"Space to flap")
	case core.StatePaused:
		drawCenteredMessage(dst, core.ColorCyan, "PAUSED", "Press P to resume")
	}
}

// rowOf maps a simulation height to a screen row.
func rowOf(w World, y float64) int {
	return int(math.Floor(w.H - y))
}

// cellCentreY returns the simulation height of the centre of a screen row.
func cellCentreY(w World, row int) float64 {
	return w.H - float64(row) - 0.5
}

func drawGround(dst *core.Screen, floorRow int) {
	if floorRow < 0 || floorRow >= dst.Height() {
		return
	}
	dst.DrawHLine(0, floorRow, dst.Width(), GroundChar, core.ColorOrange)
	for y := floorRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundFill, core.ColorGray)
	}
}

func drawPair(dst *core.Screen, w World, p Pair) {
	x0 := int(math.Ceil(p.X - 0.5))
	x1 := int(math.Ceil(p.Right() - 0.5))
	visible := core.NewRect(0, 0, dst.Width(), dst.Height())
	if !core.NewRect(x0, 0, x1-x0, int(w.H)).Intersects(visible) {
		return
	}

	lowCap, highCap := -1, -1
	for row := 0; row < int(w.H); row++ {
		cy := cellCentreY(w, row)
		switch {
		case cy < p.GapY:
			if lowCap < 0 {
				lowCap = row
			}
		case cy > p.GapTop():
			highCap = row
		default:
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, row, PipeChar, core.ColorGreen)
		}
	}

	// One cap on each segment, facing the gap.
	if highCap >= 0 {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, highCap, PipeCapTop, core.ColorBrightGreen)
		}
	}
	if lowCap >= 0 {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, lowCap, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

func drawBody(dst *core.Screen, w World, b Body, flap bool) {
	x0 := int(math.Ceil(b.Left() - 0.5))
	x1 := int(math.Ceil(b.Right() - 0.5))
	top := rowOf(w, b.Top()-0.5)
	bottom := rowOf(w, b.Y+0.5)
	if bottom < top {
		bottom = top
	}

	for row := top; row <= bottom; row++ {
		for x := x0; x < x1; x++ {
			ch := BodyChar
			switch {
			case x == x1-1 && row == top:
				ch = BeakChar
			case flap && x == x0 && row == top:
				ch = FlapChar
			}
			dst.SetColored(x, row, ch, core.ColorYellow)
		}
	}
}

// drawSummary shows the end-of-session overlay with the medal.
func drawSummary(dst *core.Screen, sum Summary) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score %s   Best %s", formatScore(sum.Score), formatScore(sum.Best)),
	}
	if sum.Medal != MedalNone {
		lines = append(lines, fmt.Sprintf("Medal: %s", sum.Medal))
	}
	if sum.NewBest() && sum.Score > 0 {
		lines = append(lines, "NEW BEST!")
	}
	lines = append(lines, "Enter/R: restart  X: reset best")
	drawCenteredMessage(dst, medalColor(sum.Medal), lines...)
}

func medalColor(m Medal) core.Color {
	switch m {
	case MedalGold:
		return core.ColorBrightYellow
	case MedalSilver:
		return core.ColorWhite
	case MedalBronze:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
// The first line is the title; a blank row separates it from the rest.
func drawCenteredMessage(dst *core.Screen, c core.Color, lines ...string) {
	if len(lines) == 0 {
		return
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 3
	boxX := core.Clamp((dst.Width()-boxW)/2, 0, dst.Width())
	boxY := core.Clamp((dst.Height()-boxH)/2, 0, dst.Height())

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	y := boxY + 1
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextColored(x, y, l, color)
		y++
		if i == 0 {
			y++
		}
	}
}
