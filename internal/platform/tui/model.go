package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/intermission"
	"github.com/vovakirdan/tui-blasters/internal/logging"
	"github.com/vovakirdan/tui-blasters/internal/registry"
	"github.com/vovakirdan/tui-blasters/internal/storage"
)

// footerRows is the space below the game reserved for the help bar.
const footerRows = 1

// Deps bundles the collaborators of a play session. Every field may be nil.
type Deps struct {
	Store  *storage.Store
	Logger *log.Logger
	Breaks *intermission.Orchestrator
}

// breakDoneMsg reports that an intermission finished.
type breakDoneMsg struct{}

// shipLocator is implemented by games that can tell where the ship is on
// screen, for the mouse joystick.
type shipLocator interface {
	ShipCell() (x, y int)
}

// Model is the Bubble Tea model for running a blasters game.
type Model struct {
	ctx       context.Context
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	breaks    *intermission.Orchestrator
	config    core.RuntimeConfig
	clock     *core.Clock
	input     *Input
	keys      GameKeyMap
	help      help.Model
	actions   core.InputFrame
	gameState core.GameState
	quitting  bool
	recorded  bool // whether the finished run has been stored
	runStart  time.Time
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	breaks := deps.Breaks
	if breaks == nil {
		breaks = intermission.New(nil, logger)
	}
	cfg.Best = loadBest(deps.Store, game.ID(), logger)

	keys := DefaultGameKeyMap()
	h := help.New()
	w, ht := gameSize(cfg.ScreenW, cfg.ScreenH)
	cfg.ScreenW, cfg.ScreenH = w, ht

	return Model{
		ctx:      context.Background(),
		game:     game,
		screen:   core.NewScreen(w, ht),
		store:    deps.Store,
		logger:   logger,
		breaks:   breaks,
		config:   cfg,
		clock:    core.NewClock(),
		input:    NewInput(keys),
		keys:     keys,
		help:     h,
		actions:  core.NewInputFrame(),
		runStart: time.Now(),
		now:      time.Now,
	}
}

func gameSize(w, h int) (int, int) {
	return w, max(h-footerRows, 2)
}

// loadBest reads the persisted best score. Failures count as no best.
func loadBest(store *storage.Store, gameID string, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	best, err := store.BestScore(storage.BestKey(gameID))
	if err != nil {
		logger.Debug("best score unavailable", "game", gameID, "err", err)
		return 0
	}
	return best
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "best", m.config.Best)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// Releases never arrive for keys held while focus is away.
		m.input.Reset()
		if m.gameState.Phase == core.PhasePlaying {
			m.actions.Set(core.ActionPause)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case breakDoneMsg:
		if gate, ok := m.game.(registry.SpawnGate); ok {
			gate.ResumeSpawning()
		}
		m.logger.Debug("intermission finished", "game", m.game.ID())
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if a := m.input.Key(msg, m.now()); a != core.ActionNone {
		m.actions.Set(a)
	}
	return m, nil
}

// handleMouse feeds the virtual joystick and buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	shipCol := m.config.ScreenW / 2
	if loc, ok := m.game.(shipLocator); ok {
		shipCol, _ = loc.ShipCell()
	}
	if m.input.Mouse(msg, shipCol) {
		m.actions.Set(core.ActionStart)
	}
	return m, nil
}

// handleResize processes window resize events. The run carries on at the
// new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := gameSize(msg.Width, msg.Height)
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.help.Width = msg.Width
	m.game.Resize(w, h)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	m.actions.Intent = m.input.Snapshot(now)

	prev := m.gameState.Phase
	result := m.game.Step(dt, m.actions)
	m.gameState = result.State
	m.actions.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventGameplayStarted:
			m.breaks.Started(m.ctx)
		case core.EventGameplayStopped:
			m.breaks.Stopped(m.ctx)
		case core.EventBreakRequested:
			m.logger.Debug("intermission requested", "game", m.game.ID(), "wave", m.gameState.Wave)
			cmds = append(cmds, m.breakCmd())
		}
	}

	if prev == core.PhaseOver && m.gameState.Phase != core.PhaseOver {
		// Restarted
		m.recorded = false
		m.runStart = now
	}
	if m.gameState.Phase == core.PhaseOver {
		outcome := storage.OutcomeDefeat
		if m.gameState.Victory {
			outcome = storage.OutcomeVictory
		}
		m.recordRun(outcome)
	}

	return m, tea.Batch(cmds...)
}

// breakCmd runs an intermission off the update loop and reports back when
// it is over. Spawning resumes whatever the outcome.
func (m Model) breakCmd() tea.Cmd {
	breaks, ctx := m.breaks, m.ctx
	return func() tea.Msg {
		breaks.Break(ctx)
		return breakDoneMsg{}
	}
}

// recordRun stores the current run once. Runs without points are skipped.
func (m *Model) recordRun(outcome string) {
	st := m.gameState
	if m.recorded || st.Score <= 0 {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}
	id := m.game.ID()
	if _, err := m.store.RecordBest(storage.BestKey(id), st.Score); err != nil {
		m.logger.Warn("best score not saved", "game", id, "err", err)
	}
	if _, err := m.store.SaveScore(id, st.Score); err != nil {
		m.logger.Warn("score not saved", "game", id, "err", err)
	}
	run, err := m.store.SaveRun(storage.Run{
		GameID:   id,
		Score:    st.Score,
		Wave:     st.Wave,
		Outcome:  outcome,
		Seed:     m.config.Seed,
		Duration: m.now().Sub(m.runStart),
	})
	if err != nil {
		m.logger.Warn("run not saved", "game", id, "err", err)
		return
	}
	m.logger.Info("run recorded", "game", id, "run", run.RunID, "score", st.Score, "outcome", outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".blasters", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	lines := strings.Split(RenderScreen(m.screen), "\n")

	helpView := helpStyle.Render(m.help.View(m.keys))
	helpLines := strings.Split(helpView, "\n")
	// Full help covers the bottom of the playfield.
	if extra := len(helpLines) - footerRows; extra > 0 && extra < len(lines) {
		lines = lines[:len(lines)-extra]
	}
	return strings.Join(append(lines, helpLines...), "\n")
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(game, deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer drives the virtual joystick
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
