package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Arkantos123789/Bird-that-flaps/internal/core"
	"github.com/Arkantos123789/Bird-that-flaps/internal/games/flappy"
)

// EventSink receives simulation events, e.g. the audio player.
type EventSink interface {
	Handle(e flappy.Event)
}

// Options configures a game session.
type Options struct {
	Runtime     core.RuntimeConfig
	AutoRestart bool
	Sound       EventSink   // nil for silence
	Logger      *log.Logger // nil discards
}

// Model is the Bubble Tea model driving one simulation.
type Model struct {
	sim    *flappy.Simulation
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	input  core.InputFrame

	runtime     core.RuntimeConfig
	autoRestart bool
	sound       EventSink
	logger      *log.Logger

	lastTick time.Time // zero until the first tick, and after a pause
	sessions int
	paused   bool
	quitting bool
}

// NewModel creates a Bubble Tea model around sim.
func NewModel(sim *flappy.Simulation, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		sim:         sim,
		screen:      core.NewScreen(opts.Runtime.ScreenW, playfieldHeight(opts.Runtime.ScreenH)),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		input:       core.NewInputFrame(),
		runtime:     opts.Runtime,
		autoRestart: opts.AutoRestart,
		sound:       opts.Sound,
		logger:      logger,
		sessions:    1,
	}
}

// playfieldHeight leaves one row for the help footer.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records input for the next tick. Only quit, pause and help act
// immediately; everything else is consumed by the tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.lastTick = time.Time{} // no catch-up after resuming
		m.logger.Debug("pause", "paused", m.paused)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick converts the tick timestamp into elapsed time and steps the
// simulation. A key seen since the previous tick counts as a held jump.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	defer m.input.Clear()

	if m.paused {
		return m, tickCmd(m.runtime.TickRate)
	}

	if m.sim.CanRestart() && (m.autoRestart || m.input.Has(core.ActionRestart) || m.input.Has(core.ActionJump)) {
		score := m.sim.Score()
		m.sim.Reset()
		m.sessions++
		m.logger.Info("restart", "session", m.sessions, "best", score.Best)
		return m, tickCmd(m.runtime.TickRate)
	}

	res := m.sim.Step(flappy.Input{
		Elapsed: elapsed,
		Jump:    m.input.Has(core.ActionJump),
	})

	for _, e := range res.Events {
		m.logEvent(e)
		if m.sound != nil {
			m.sound.Handle(e)
		}
	}

	return m, tickCmd(m.runtime.TickRate)
}

func (m Model) logEvent(e flappy.Event) {
	switch e.Kind {
	case flappy.EventBegan:
		m.logger.Info("session began", "session", m.sessions)
	case flappy.EventScored:
		m.logger.Debug("scored", "obstacle", e.Obstacle, "score", e.Score, "at", e.At)
	case flappy.EventCollided:
		with := "obstacle"
		if e.Obstacle == flappy.GroundContact {
			with = "ground"
		}
		m.logger.Info("collided", "with", with, "obstacle", e.Obstacle, "score", e.Score, "at", e.At)
	}
}

// Simulation returns the driven simulation.
func (m Model) Simulation() *flappy.Simulation {
	return m.sim
}

// Paused reports whether the tick loop is paused.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.paused {
		footer = pausedStyle.Render("PAUSED") + " " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for sim.
func Run(sim *flappy.Simulation, opts Options) error {
	p := tea.NewProgram(
		NewModel(sim, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
