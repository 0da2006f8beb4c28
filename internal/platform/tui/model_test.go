package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", spaceKey, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runeKey('w'), core.ActionJump},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"t", runeKey('t'), core.ActionShowBest},
		{"x", runeKey('x'), core.ActionResetBest},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help", runeKey('?'), core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestClockSync(t *testing.T) {
	var c clock

	if cmd := c.sync(false, time.Millisecond); cmd != nil {
		t.Error("stopped clock should not schedule")
	}
	if cmd := c.sync(true, time.Millisecond); cmd == nil {
		t.Fatal("starting the clock should schedule a tick")
	}
	first := c.gen
	if !c.current(TickMsg{Gen: first}) {
		t.Error("tick of the running generation should be current")
	}
	if cmd := c.sync(true, time.Millisecond); cmd != nil {
		t.Error("an already running clock must not schedule a second loop")
	}

	c.sync(false, time.Millisecond)
	if c.current(TickMsg{Gen: first}) {
		t.Error("tick from a stopped run should be stale")
	}

	c.sync(true, time.Millisecond)
	if c.current(TickMsg{Gen: first}) {
		t.Error("tick from an earlier run should be stale after restart")
	}
}

type recordingLedger struct {
	best     int
	recorded []int
}

func (l *recordingLedger) Load() (int, bool) { return l.best, l.best > 0 }
func (l *recordingLedger) Save(best int)     { l.best = best }
func (l *recordingLedger) Reset()            { l.best = 0 }
func (l *recordingLedger) Record(score int)  { l.recorded = append(l.recorded, score) }

func newTestModel(t *testing.T, l *recordingLedger) Model {
	t.Helper()
	opts := Options{
		Config: config.DefaultFlappyConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:      80,
			ScreenH:      25,
			TickInterval: 30 * time.Millisecond,
			Seed:         7,
		},
		ScreenshotDir: t.TempDir(),
	}
	if l != nil {
		opts.Ledger = l
	}
	return NewModel(opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t, nil)
	if cmd := m.Init(); cmd != nil {
		t.Error("idle model should not start the clock")
	}
	if m.State().State != core.StateIdle {
		t.Errorf("state = %v", m.State().State)
	}
	if !strings.Contains(m.View(), "GET READY") {
		t.Error("idle view should show the get ready banner")
	}
}

func TestModelJumpStartsClock(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, spaceKey)
	if m.State().State != core.StateRunning {
		t.Fatalf("state = %v, want running", m.State().State)
	}
	if cmd == nil {
		t.Fatal("starting a session should schedule a tick")
	}

	// Stale ticks are ignored.
	m, cmd = update(t, m, TickMsg{Gen: m.clock.gen - 1})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}

	// Current ticks step the session and keep the loop going.
	m, cmd = update(t, m, TickMsg{Gen: m.clock.gen})
	if cmd == nil {
		t.Error("running session should schedule the next tick")
	}
}

func TestModelPauseStopsClock(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, spaceKey)
	gen := m.clock.gen

	// While running, pause waits for the next tick.
	m, _ = update(t, m, runeKey('p'))
	if m.State().State != core.StateRunning {
		t.Fatal("pause should apply on the next tick")
	}
	m, cmd := update(t, m, TickMsg{Gen: gen})
	if m.State().State != core.StatePaused {
		t.Fatalf("state = %v, want paused", m.State().State)
	}
	if cmd != nil {
		t.Error("paused session should not schedule ticks")
	}
	if m.clock.current(TickMsg{Gen: gen}) {
		t.Error("tick from before the pause should be stale")
	}

	// Resuming applies immediately and restarts the loop.
	m, cmd = update(t, m, runeKey('p'))
	if m.State().State != core.StateRunning || cmd == nil {
		t.Errorf("resume: state %v, cmd %v", m.State().State, cmd != nil)
	}
}

func TestModelRecordsFinishedSession(t *testing.T) {
	l := &recordingLedger{}
	m := newTestModel(t, l)
	m, _ = update(t, m, spaceKey)

	for i := 0; i < 10000 && m.State().State == core.StateRunning; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.clock.gen})
	}
	if m.State().State != core.StateOver {
		t.Fatalf("session never ended, state = %v", m.State().State)
	}
	if len(l.recorded) != 1 {
		t.Errorf("recorded %v, want one session", l.recorded)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("over view should show the summary")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().State != core.StateIdle {
		t.Errorf("confirm on summary: state = %v", m.State().State)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, nil)
	m.screenshotDir = dir

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "flappy_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v (err %v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "GET READY") {
		t.Error("screenshot should contain the rendered screen")
	}
}

func TestModelQueuedKeysKeepOrder(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg{Gen: m.clock.gen})

	// Both keys arrive before the next tick: the flap lands, then the pause.
	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg{Gen: m.clock.gen})

	if m.State().State != core.StatePaused {
		t.Fatalf("state = %v, want paused", m.State().State)
	}
	if cmd != nil {
		t.Error("paused session should not schedule ticks")
	}
	if vy := m.session.Snapshot().Body.VY; vy != 0.8 {
		t.Errorf("VY = %v, want the untouched jump impulse 0.8", vy)
	}
}
