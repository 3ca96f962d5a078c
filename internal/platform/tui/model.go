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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// helpRows is the space kept below the playfield for the key help line.
const helpRows = 1

// Model is the Bubble Tea model for running a platformer campaign.
type Model struct {
	game      *platformer.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger

	hold    *core.HoldState // Movement and jump, refreshed by key repeats
	pending []core.Action   // One-shot actions for the next tick

	gameState core.GameState
	quitting  bool
	back      bool // Esc pressed: return to the level picker
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already be Reset for cfg.
func NewModel(game *platformer.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		logger:    logger,
		hold:      core.NewHoldState(game.HoldTicks()),
		gameState: game.State(),
	}
}

func playfieldHeight(h int) int {
	return max(h-helpRows, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.game.Abandon()
		return m, tea.Quit

	case action == core.ActionBack:
		m.back = true
		m.game.Abandon()
		return m, tea.Quit

	case action == core.ActionNone:
		return m, nil

	case Held(action):
		m.hold.Press(action)

	default:
		m.pending = append(m.pending, action)
	}

	return m, nil
}

// handleResize keeps the campaign running and only rebuilds the raster.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.game.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	if err := m.game.RasterErr(); err != nil {
		m.logger.Debug("screen too small", "err", err)
	}
	return m, nil
}

// handleTick samples held keys and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.hold.Sample()
	for _, a := range m.pending {
		frame.Set(a)
	}
	m.pending = m.pending[:0]

	before := m.gameState
	m.gameState = m.game.Step(frame).State
	m.hold.Advance()

	// Held keys must not leak into the next level or a restarted run.
	if m.gameState.Level != before.Level || (before.Ended() && !m.gameState.Ended()) {
		m.hold.Reset()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_level%d_%s.txt", m.game.ID(), m.gameState.Level, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + renderHelp(m.help, m.keyMapper.Keys())
}

// WentBack reports whether the player left for the level picker.
func (m Model) WentBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for the game.
// It reports whether the player asked to go back to the level picker.
func Run(game *platformer.Game, cfg core.RuntimeConfig, logger *log.Logger) (back bool, err error) {
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  playfieldHeight(cfg.ScreenH),
		TickRate: cfg.TickRate,
	})
	if err := game.RasterErr(); err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		game.Abandon()
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WentBack(), nil
}
