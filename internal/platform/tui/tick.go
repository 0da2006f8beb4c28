// Package tui provides the Bubble Tea integration for Flappy.
// It handles the terminal UI loop, input mapping, the simulation clock and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
// Gen identifies the clock run that scheduled it; ticks from a stopped run
// are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a command that sends one tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// clock tracks the tick loop. The loop only runs while the session is
// Running; stopping bumps the generation so an in-flight tick is ignored.
type clock struct {
	gen     int
	running bool
}

// sync starts or stops the loop to match running and returns the command
// that schedules the first tick, if any.
func (c *clock) sync(running bool, interval time.Duration) tea.Cmd {
	switch {
	case running && !c.running:
		c.gen++
		c.running = true
		return tickCmd(interval, c.gen)
	case !running && c.running:
		c.gen++
		c.running = false
	}
	return nil
}

// current reports whether msg belongs to the active run.
func (c *clock) current(msg TickMsg) bool {
	return c.running && msg.Gen == c.gen
}
