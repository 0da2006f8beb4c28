package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// helpRows is the space reserved under the playfield for the key help.
const helpRows = 1

// Ledger is the best score store plus the session history.
type Ledger interface {
	game.Ledger
	Record(score int)
}

// Options configure a game model.
type Options struct {
	Config  config.FlappyConfig
	Runtime core.RuntimeConfig
	Ledger  Ledger     // May be nil
	Sound   game.Sound // May be nil
	Logger  *log.Logger
	// ScreenshotDir is where ctrl+s writes the screen. Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one Flappy session.
type Model struct {
	session *game.Session
	screen  *core.Screen
	ledger  Ledger
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	input   core.InputFrame
	clock   *clock
	state   core.GameState

	screenshotDir string
	quitting      bool
}

// NewModel creates a model with a fresh session in the Idle state.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.ScreenH = max(rt.ScreenH-helpRows, 0)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := game.Collaborators{Sound: opts.Sound}
	if opts.Ledger != nil {
		c.Ledger = opts.Ledger
	}
	session := game.NewSession(opts.Config, rt, c)

	h := help.New()
	h.ShowAll = false

	return Model{
		session:       session,
		screen:        core.NewScreen(rt.ScreenW, rt.ScreenH),
		ledger:        opts.Ledger,
		logger:        logger,
		keys:          DefaultKeyMap(),
		help:          h,
		input:         core.NewInputFrame(),
		clock:         &clock{},
		state:         session.State(),
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init starts nothing: the clock runs only once the first jump starts the session.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. While Running the action waits for
// the next tick; otherwise there is no tick coming and it applies at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.clock.sync(false, 0)
		return m, tea.Quit
	}

	m.input.Push(action)
	if m.state.Running() {
		return m, nil
	}

	res := m.session.Apply(m.input)
	m.input.Clear()
	return m, m.afterStep(res)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := max(msg.Height-helpRows, 0)
	m.screen.Resize(msg.Width, h)
	m.session.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.current(msg) {
		return m, nil
	}

	res := m.session.Step(m.input)
	m.input.Clear()

	cmd := m.afterStep(res)
	if m.state.Running() && cmd == nil {
		cmd = tickCmd(m.session.TickInterval(), m.clock.gen)
	}
	return m, cmd
}

// afterStep records the new state, handles events and keeps the clock in
// step with the session.
func (m *Model) afterStep(res core.StepResult) tea.Cmd {
	m.state = res.State

	for _, e := range res.Events {
		switch e {
		case core.EventSessionEnd:
			m.logger.Info("session over", "score", res.State.Score, "best", res.State.Best)
			if m.ledger != nil {
				m.ledger.Record(res.State.Score)
			}
		case core.EventNewBest:
			m.logger.Debug("new best score", "best", res.State.Best)
		}
	}

	return m.clock.sync(m.state.Running(), m.session.TickInterval())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.session.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last known session state.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
