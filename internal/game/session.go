// Package game implements the Flappy simulation: a body falling under
// gravity, two recycled obstacle pairs, scoring, collisions and the
// Idle/Running/Paused/Over lifecycle that ties them together.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// flapTicks is how long the wing stays up after a jump.
const flapTicks = 7

// Ledger persists the best score. Implementations swallow their own
// failures: the simulation never sees an error.
type Ledger interface {
	// Load returns the stored best score, ok is false when none exists.
	Load() (best int, ok bool)
	// Save records a new best score. Saving the same value again is harmless.
	Save(best int)
	// Reset clears the stored best score.
	Reset()
}

// Sound is notified of every event the session emits. Play must not block.
type Sound interface {
	Play(e core.Event)
}

// Collaborators are the external side effects a session drives.
// Nil members are replaced by no-ops.
type Collaborators struct {
	Ledger Ledger
	Sound  Sound
}

// Overlay is a modal shown on top of the playfield.
type Overlay int

const (
	OverlayNone    Overlay = iota
	OverlaySummary         // End-of-session summary, closes by restarting
	OverlayBest            // Best score board opened by the player
)

// World describes the playfield in simulation units.
type World struct {
	W       float64 // Width, also the spawn edge
	H       float64 // Height above the floor
	Ceiling float64 // Touching this height is a hit
}

// Session is the single owner of all simulation state.
type Session struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	world   World
	body    Body
	field   *Field
	rng     *rand.Rand

	state   core.SessionState
	overlay Overlay
	summary Summary
	score   int
	best    int

	ticks int // Ticks since the last restart
	flap  int // Remaining ticks of the flap animation

	ledger Ledger
	sound  Sound
}

// NewSession creates a session in the Idle state. The best score is loaded
// from the ledger once, here.
func NewSession(cfg config.FlappyConfig, runtime core.RuntimeConfig, c Collaborators) *Session {
	s := &Session{
		cfg:     cfg,
		runtime: runtime,
		rng:     rand.New(rand.NewSource(runtime.Seed)),
		ledger:  c.Ledger,
		sound:   c.Sound,
	}
	if s.ledger == nil {
		s.ledger = nopLedger{}
	}
	if s.sound == nil {
		s.sound = nopSound{}
	}
	if best, ok := s.ledger.Load(); ok && best > 0 {
		s.best = best
	}
	s.reset()
	return s
}

// reset reinitialises the body, both pairs and the score. Best is kept.
func (s *Session) reset() {
	s.world = worldFor(s.cfg, s.runtime)
	s.body = Body{
		X:    s.world.W / 2,
		Y:    s.world.H/2 - s.cfg.Body.Size/2,
		Size: s.cfg.Body.Size,
	}
	if s.field == nil {
		s.field = NewField(s.rng, s.world.W, s.world.H, s.cfg.Physics.HorizontalSpeed, s.cfg.Obstacles)
	} else {
		s.field.Reset(s.world.W, s.world.H)
	}
	s.state = core.StateIdle
	s.overlay = OverlayNone
	s.summary = Summary{}
	s.score = 0
	s.ticks = 0
	s.flap = 0
}

func worldFor(cfg config.FlappyConfig, rt core.RuntimeConfig) World {
	h := max(float64(rt.ScreenH-cfg.World.GroundRows), 0)
	return World{
		W:       float64(rt.ScreenW),
		H:       h,
		Ceiling: h - cfg.World.CeilingMargin,
	}
}

// Resize records new screen dimensions. They take effect immediately while
// Idle with no overlay, otherwise once the session is back in that state.
func (s *Session) Resize(w, h int) {
	s.runtime.ScreenW = w
	s.runtime.ScreenH = h
	s.applyGeometry()
}

// applyGeometry rebuilds an idle session whose world no longer matches the
// screen. Running and paused sessions keep their geometry.
func (s *Session) applyGeometry() {
	if s.state != core.StateIdle || s.overlay != OverlayNone {
		return
	}
	if worldFor(s.cfg, s.runtime) != s.world {
		s.reset()
	}
}

// Apply handles player input without advancing time.
// The platform uses it while the clock is stopped.
func (s *Session) Apply(in core.InputFrame) core.StepResult {
	var ev []core.Event
	ev = s.applyInput(in, ev)
	return s.result(ev)
}

// Step applies queued input, then advances one tick if the session is Running.
// Integration, obstacle motion, scoring, collision and the resulting
// transition happen in that order as one step.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	var ev []core.Event
	ev = s.applyInput(in, ev)
	if s.state == core.StateRunning {
		ev = s.tick(ev)
	}
	return s.result(ev)
}

// applyInput applies the actions of one frame in the order they arrived.
func (s *Session) applyInput(in core.InputFrame, ev []core.Event) []core.Event {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionConfirm:
			ev = s.confirm(ev)
		case core.ActionShowBest:
			s.showBest()
		case core.ActionResetBest:
			s.resetBest()
		case core.ActionRestart:
			s.restart()
		case core.ActionPause:
			s.togglePause()
		case core.ActionJump:
			ev = s.jump(ev)
		}
	}
	return ev
}

func (s *Session) tick(ev []core.Event) []core.Event {
	s.ticks++
	if s.flap > 0 {
		s.flap--
	}

	// A body already on the floor cannot lift off again.
	if s.body.Grounded() {
		return s.crash(ev)
	}

	s.body.Integrate(s.cfg.Physics.Gravity)
	s.field.Advance(s.score)

	pairs := s.field.pairs[:]
	for range awardPasses(s.body, pairs) {
		s.score++
		ev = s.emit(ev, core.EventScore)
	}

	if collides(s.body, pairs, s.world.Ceiling) {
		ev = s.crash(ev)
	}
	return ev
}

// crash ends the session and settles the best score.
func (s *Session) crash(ev []core.Event) []core.Event {
	ev = s.emit(ev, core.EventCollision)
	s.state = core.StateOver
	ev = s.emit(ev, core.EventSessionEnd)

	prev := s.best
	if s.score > s.best {
		s.best = s.score
		s.ledger.Save(s.best)
		ev = s.emit(ev, core.EventNewBest)
	}

	s.summary = Summary{
		Score:    s.score,
		Best:     s.best,
		PrevBest: prev,
		Medal:    medalFor(s.score, prev),
	}
	s.overlay = OverlaySummary
	return ev
}

func (s *Session) jump(ev []core.Event) []core.Event {
	if s.overlay != OverlayNone {
		return ev
	}
	switch s.state {
	case core.StateIdle:
		s.state = core.StateRunning
	case core.StateRunning:
	default:
		return ev
	}
	s.body.Jump(s.cfg.Physics.JumpImpulse)
	s.flap = flapTicks
	return s.emit(ev, core.EventJump)
}

func (s *Session) togglePause() {
	if s.overlay != OverlayNone {
		return
	}
	switch s.state {
	case core.StateRunning:
		s.state = core.StatePaused
	case core.StatePaused:
		s.state = core.StateRunning
	}
}

func (s *Session) restart() {
	if s.state != core.StateOver {
		return
	}
	s.reset()
}

// confirm acknowledges the open overlay. The summary restarts the game,
// the best score board resumes a paused session.
func (s *Session) confirm(ev []core.Event) []core.Event {
	switch s.overlay {
	case OverlaySummary:
		s.restart()
	case OverlayBest:
		s.overlay = OverlayNone
		if s.state == core.StatePaused {
			s.state = core.StateRunning
		}
		s.applyGeometry()
	}
	return ev
}

// showBest opens the best score board. A running session is paused under it.
func (s *Session) showBest() {
	if s.overlay != OverlayNone || s.state == core.StateOver {
		return
	}
	if s.state == core.StateRunning {
		s.state = core.StatePaused
	}
	s.overlay = OverlayBest
}

// resetBest clears the best score. Only reachable from an open overlay.
func (s *Session) resetBest() {
	if s.overlay == OverlayNone {
		return
	}
	s.best = 0
	s.summary.Best = 0
	s.ledger.Reset()
}

func (s *Session) emit(ev []core.Event, e core.Event) []core.Event {
	s.sound.Play(e)
	return append(ev, e)
}

func (s *Session) result(ev []core.Event) core.StepResult {
	return core.StepResult{State: s.State(), Events: ev}
}

// State returns the compact status used by the platform.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:   s.score,
		Best:    s.best,
		State:   s.state,
		Overlay: s.overlay != OverlayNone,
	}
}

// TickInterval returns the clock period. A runtime override wins over the
// game configuration.
func (s *Session) TickInterval() time.Duration {
	if s.runtime.TickInterval > 0 {
		return s.runtime.TickInterval
	}
	return s.cfg.Timing.TickInterval()
}

type nopLedger struct{}

func (nopLedger) Load() (int, bool) { return 0, false }
func (nopLedger) Save(int)          {}
func (nopLedger) Reset()            {}

type nopSound struct{}

func (nopSound) Play(core.Event) {}
