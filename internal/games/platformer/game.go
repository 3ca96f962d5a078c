// Package platformer runs a campaign of platformer levels on top of the
// simulation in sim. It owns the run bookkeeping, maps platform input to
// simulation input and rasterises the draw list into a character screen.
package platformer

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// RunOutcome describes how a level attempt ended.
type RunOutcome int

const (
	RunComplete RunOutcome = iota
	RunGameOver
	RunAbandoned
)

// String returns the stored name of the outcome.
func (o RunOutcome) String() string {
	switch o {
	case RunComplete:
		return "complete"
	case RunGameOver:
		return "game_over"
	default:
		return "abandoned"
	}
}

// RunResult summarises one finished level attempt.
type RunResult struct {
	LevelID int
	Score   int // Earned in this level
	Coins   int
	Total   int // Campaign total including this level
	Outcome RunOutcome
}

// RunSaver persists run results.
type RunSaver interface {
	SaveRunResult(RunResult) error
}

// Game implements a platformer campaign.
type Game struct {
	// Level source and campaign order
	provider sim.Provider
	order    []int
	startID  int

	// Simulation
	loop *sim.Loop
	run  *sim.RunState

	// Campaign state
	levelID   int
	firstID   int   // Level the campaign restarts from
	total     int   // Banked score of completed levels
	stages    int   // Levels completed this campaign
	finished  bool  // Every level in the order completed
	recorded  bool  // Current attempt already reported
	last      RunResult
	startErr  error // Last failed load, shown instead of the level
	tickCount int

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	cfgFixed   bool
	difficulty *config.DifficultyManager

	// Output
	raster    *Raster
	rasterErr error
	saver     RunSaver
	logger    *log.Logger
}

// New creates a campaign over every registered level.
func New() *Game {
	return &Game{
		provider: registry.Provider(),
		logger:   log.New(io.Discard),
	}
}

// NewCampaign creates a campaign over the given level ids, in order.
func NewCampaign(provider sim.Provider, ids []int) *Game {
	return &Game{
		provider: provider,
		order:    slices.Clone(ids),
		logger:   log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// SetStartLevel selects the level Reset starts from. Zero uses the config.
func (g *Game) SetStartLevel(id int) {
	g.startID = id
}

// UseConfig fixes the configuration instead of loading it on Reset.
func (g *Game) UseConfig(cfg config.PlatformerConfig) {
	g.cfg = cfg.Normalize()
	g.cfgFixed = true
}

// SetLogger sets the logger for campaign and simulation events.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// SetRunSaver registers where finished attempts are reported.
func (g *Game) SetRunSaver(s RunSaver) {
	g.saver = s
}

// Config returns the configuration in use.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// Reset loads configuration, sizes the raster and starts the campaign.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgFixed {
		cfg, err := config.LoadPlatformer(configPath)
		if err != nil {
			g.logger.Warn("config load failed, using defaults", "err", err)
			cfg = config.DefaultPlatformerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPlatformerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if len(g.order) == 0 {
		for _, info := range registry.List() {
			g.order = append(g.order, info.ID)
		}
	}

	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.run = sim.NewRunState(g.cfg.Gameplay.Lives)
	g.loop = sim.NewLoop(g.provider, g.params(), g.run)
	g.loop.SetSink(sim.SinkFunc(g.onEvent))
	g.tickCount = 0

	g.firstID = g.startLevel()
	if err := g.Start(g.firstID); err != nil {
		g.logger.Error("cannot start level", "level", g.firstID, "err", err)
	}
}

// Resize rebuilds the raster for a new screen size. The simulation is untouched.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.raster, g.rasterErr = NewRaster(w, h, g.cfg.World.Width, g.cfg.World.Height)
}

// RasterErr returns why the current screen cannot show the game, if it cannot.
func (g *Game) RasterErr() error {
	return g.rasterErr
}

func (g *Game) startLevel() int {
	switch {
	case g.startID != 0:
		return g.startID
	case slices.Contains(g.order, g.cfg.Gameplay.StartLevel):
		return g.cfg.Gameplay.StartLevel
	case len(g.order) > 0:
		return g.order[0]
	default:
		return g.cfg.Gameplay.StartLevel
	}
}

// params converts configuration into physics constants for the next level.
func (g *Game) params() sim.Params {
	p := sim.Params{
		Gravity:         g.cfg.Physics.Gravity,
		JumpForce:       g.cfg.Physics.JumpForce,
		MoveSpeed:       g.cfg.Physics.MoveSpeed,
		PlayerW:         g.cfg.Player.Width,
		PlayerH:         g.cfg.Player.Height,
		CanvasW:         g.cfg.World.Width,
		CanvasH:         g.cfg.World.Height,
		GoalW:           g.cfg.Goal.Width,
		GoalH:           g.cfg.Goal.Height,
		EnemySpeedScale: 1,
	}
	if g.difficulty != nil {
		p.EnemySpeedScale = g.difficulty.Speed(1, g.total, g.stages)
	}
	return p
}

// Start begins a fresh campaign at levelID: full lives, zero score.
func (g *Game) Start(levelID int) error {
	g.total = 0
	g.stages = 0
	g.finished = false
	g.last = RunResult{}
	*g.run = *sim.NewRunState(g.cfg.Gameplay.Lives)
	return g.load(levelID)
}

// NextLevel moves on after a completed level. Lives carry over; level
// score and coins start from zero.
func (g *Game) NextLevel() error {
	if g.loop.Outcome() != sim.OutcomeLevelComplete {
		return errors.New("platformer: level not complete")
	}
	next, ok := g.nextID()
	if !ok {
		g.finished = true
		return nil
	}
	g.run.Score = 0
	g.run.Coins = 0
	return g.load(next)
}

// Restart starts the campaign over from its first level.
func (g *Game) Restart() error {
	return g.Start(g.firstID)
}

// Abandon reports an unfinished attempt and stops the simulation.
func (g *Game) Abandon() {
	if g.loop == nil {
		return
	}
	if st := g.loop.State(); (st == sim.StateRunning || st == sim.StatePaused) && !g.recorded {
		g.record(RunAbandoned, g.total+g.run.Score)
	}
	g.loop.Cleanup()
}

func (g *Game) load(id int) error {
	g.loop.SetParams(g.params())
	g.recorded = false
	g.levelID = id
	if err := g.loop.LoadLevel(id); err != nil {
		g.startErr = err
		return fmt.Errorf("platformer: %w", err)
	}
	g.startErr = nil
	g.logger.Info("level started", "level", id, "name", g.loop.Level().Name,
		"enemy_speed", g.loop.Params().EnemySpeedScale)
	return nil
}

func (g *Game) nextID() (int, bool) {
	i := slices.Index(g.order, g.levelID)
	if i < 0 || i+1 >= len(g.order) {
		return 0, false
	}
	return g.order[i+1], true
}

// Step advances the campaign by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.raster == nil || g.loop == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.finished || g.loop.Outcome() == sim.OutcomeGameOver || g.startErr != nil) {
		if err := g.Restart(); err != nil {
			g.logger.Error("restart failed", "err", err)
		}
		return core.StepResult{State: g.State()}
	}

	// Advance to the next level
	if in.Has(core.ActionConfirm) && g.loop.Outcome() == sim.OutcomeLevelComplete && !g.finished {
		if err := g.NextLevel(); err != nil {
			g.logger.Error("next level failed", "err", err)
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.loop.State() {
		case sim.StateRunning:
			g.loop.Pause()
		case sim.StatePaused:
			g.loop.Resume()
		}
	}

	if g.loop.State() != sim.StateRunning {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.loop.Tick(sim.InputFromFrame(in))

	if g.loop.State() == sim.StateTerminal {
		g.finishLevel()
	}

	return core.StepResult{State: g.State()}
}

// finishLevel banks or reports the attempt that just ended.
func (g *Game) finishLevel() {
	switch g.loop.Outcome() {
	case sim.OutcomeLevelComplete:
		g.stages++
		g.total += g.run.Score
		g.record(RunComplete, g.total)
		g.run.Score = 0
		g.run.Coins = 0
		if _, ok := g.nextID(); !ok {
			g.finished = true
			g.logger.Info("campaign finished", "total", g.total)
		}
	case sim.OutcomeGameOver:
		g.record(RunGameOver, g.total+g.run.Score)
	}
}

func (g *Game) record(outcome RunOutcome, total int) {
	g.recorded = true
	g.last = RunResult{
		LevelID: g.levelID,
		Score:   g.run.Score,
		Coins:   g.run.Coins,
		Total:   total,
		Outcome: outcome,
	}
	g.logger.Info("level ended", "level", g.levelID, "outcome", outcome,
		"score", g.last.Score, "coins", g.last.Coins, "total", total)

	if g.saver == nil {
		return
	}
	if err := g.saver.SaveRunResult(g.last); err != nil {
		g.logger.Warn("cannot save run", "err", err)
	}
}

func (g *Game) onEvent(e sim.Event) {
	g.logger.Debug("sim event", "level", g.levelID, "event", e.Kind, "value", e.Value)
}

// LastResult returns the most recently finished attempt.
func (g *Game) LastResult() RunResult {
	return g.last
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	if g.run == nil {
		return 0
	}
	return g.run.Lives
}

// HoldTicks returns how long a key press keeps moving the player.
func (g *Game) HoldTicks() int {
	return g.cfg.Input.HoldTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.total,
		Level:    g.levelID,
		Finished: g.finished,
	}
	if g.loop == nil {
		return st
	}
	st.Score += g.run.Score
	st.GameOver = g.loop.Outcome() == sim.OutcomeGameOver
	st.LevelComplete = g.loop.Outcome() == sim.OutcomeLevelComplete && !g.finished
	st.Paused = g.loop.State() == sim.StatePaused
	return st
}
