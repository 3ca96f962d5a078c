package sim

import (
	"fmt"
)

// State is the lifecycle state of a Loop.
type State int

const (
	StateIdle     State = iota // No level loaded
	StateRunning               // Ticking
	StatePaused                // Suspended, resumable
	StateTerminal              // Game over or level complete; needs a load
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// Outcome explains why a loop is Terminal.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeLevelComplete
)

// Loop drives the per-tick update order and owns the pause/resume lifecycle.
// It is not safe for concurrent use; the frame driver calls it from one goroutine.
type Loop struct {
	provider Provider
	physics  Physics
	run      *RunState
	sink     Sink

	level   *Level
	player  *Player
	state   State
	outcome Outcome
	frame   int
}

// NewLoop creates an idle loop. run is owned by the caller and updated in place.
func NewLoop(provider Provider, params Params, run *RunState) *Loop {
	return &Loop{
		provider: provider,
		physics:  NewPhysics(params),
		run:      run,
	}
}

// SetSink registers a receiver for events in addition to Tick's return value.
func (l *Loop) SetSink(s Sink) {
	l.sink = s
}

// SetParams replaces the physics constants. It takes effect on the next
// tick; the player keeps its current size until the next load.
func (l *Loop) SetParams(p Params) {
	l.physics = NewPhysics(p)
}

// Params returns the physics constants in use.
func (l *Loop) Params() Params {
	return l.physics.Params()
}

// SetRunState swaps the bookkeeping the loop updates.
func (l *Loop) SetRunState(run *RunState) {
	l.run = run
}

// LoadLevel makes id the active level and starts running it.
// Reloading the current level reuses the same Level value and resets its
// entities; any other id is fetched from the provider. On failure the loop
// drops its level and goes Idle.
func (l *Loop) LoadLevel(id int) error {
	lvl := l.level
	if lvl == nil || lvl.ID != id {
		fetched, err := l.provider.Load(id)
		if err != nil {
			l.unload()
			return fmt.Errorf("load level %d: %w", id, err)
		}
		lvl = fetched
	}

	if err := Validate(lvl); err != nil {
		l.unload()
		return fmt.Errorf("load level %d: %w", id, err)
	}
	if err := ValidateSpawn(lvl, l.physics.Params()); err != nil {
		l.unload()
		return fmt.Errorf("load level %d: %w", id, err)
	}

	ResetEntities(lvl)
	l.level = lvl
	params := l.physics.Params()
	l.player = NewPlayer(lvl.Spawn, params.PlayerW, params.PlayerH)
	l.state = StateRunning
	l.outcome = OutcomeNone
	return nil
}

func (l *Loop) unload() {
	l.level = nil
	l.player = nil
	l.state = StateIdle
	l.outcome = OutcomeNone
}

// Pause suspends ticking. Calling it when not running is a no-op.
func (l *Loop) Pause() {
	if l.state == StateRunning {
		l.state = StatePaused
	}
}

// Resume continues a paused loop. It never leaves Idle or Terminal.
func (l *Loop) Resume() {
	if l.state == StatePaused {
		l.state = StateRunning
	}
}

// Cleanup stops future ticks and detaches the sink. It is idempotent.
func (l *Loop) Cleanup() {
	l.Pause()
	l.sink = nil
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Outcome returns why the loop is Terminal, or OutcomeNone.
func (l *Loop) Outcome() Outcome {
	return l.outcome
}

// Level returns the active level, or nil when idle.
func (l *Loop) Level() *Level {
	return l.level
}

// Player returns the active player, or nil when idle.
func (l *Loop) Player() *Player {
	return l.player
}

// Frame returns the number of ticks processed so far.
func (l *Loop) Frame() int {
	return l.frame
}

// Tick runs one simulation step and returns the events it produced.
// Outside the Running state it does nothing and returns nil.
func (l *Loop) Tick(in Input) []Event {
	if l.state != StateRunning {
		return nil
	}

	l.frame++
	ph := l.physics
	pl := l.player
	lvl := l.level
	var events []Event

	ph.ApplyIntent(pl, in)
	ph.Integrate(pl)
	ph.ResolvePlatforms(pl, lvl.Platforms)
	ph.ClampToWorld(pl)

	lostLife := false
	if ph.FellOut(pl) {
		lostLife = true
		if l.loseLife(&events) {
			return l.deliver(events)
		}
	}
	ph.Animate(pl, l.frame)

	ph.StepEnemies(lvl.Enemies)

	if !lostLife && ph.HitEnemy(pl, lvl.Enemies) {
		if l.loseLife(&events) {
			return l.deliver(events)
		}
	}

	for _, i := range ph.Collect(pl, lvl.Collectibles) {
		l.run.Score += lvl.Collectibles[i].Value
		l.run.Coins++
		events = append(events,
			Event{Kind: EventScoreChanged, Value: l.run.Score},
			Event{Kind: EventCoinsChanged, Value: l.run.Coins},
		)
	}

	if ph.ReachedGoal(pl, lvl.Goal) {
		l.state = StateTerminal
		l.outcome = OutcomeLevelComplete
		events = append(events, Event{Kind: EventLevelComplete, Value: lvl.ID})
	}

	return l.deliver(events)
}

// loseLife takes a life and respawns the player. It returns true when the
// run has ended.
func (l *Loop) loseLife(events *[]Event) bool {
	l.run.Lives--
	if l.run.Lives < 0 {
		l.run.Lives = 0
	}
	*events = append(*events, Event{Kind: EventLivesChanged, Value: l.run.Lives})

	if l.run.Lives == 0 {
		l.state = StateTerminal
		l.outcome = OutcomeGameOver
		*events = append(*events, Event{Kind: EventGameOver, Value: l.level.ID})
		return true
	}

	l.player.Respawn(l.level.Spawn)
	return false
}

func (l *Loop) deliver(events []Event) []Event {
	if l.sink != nil {
		for _, e := range events {
			l.sink.Notify(e)
		}
	}
	return events
}

// View returns a read-only snapshot reference for rendering.
func (l *Loop) View() View {
	return View{
		Level:   l.level,
		Player:  l.player,
		Frame:   l.frame,
		CanvasW: l.physics.Params().CanvasW,
		CanvasH: l.physics.Params().CanvasH,
	}
}
