package sim

import "fmt"

// groundY is the top of the floor in testLevel.
const groundY = 550.0

// testLevel builds a small level: a floor, one ledge, a patrolling enemy,
// two coins and a goal at the far right.
func testLevel(id int) *Level {
	return &Level{
		ID:    id,
		Name:  fmt.Sprintf("test-%d", id),
		Spawn: Point{X: 50, Y: groundY - 32},
		Platforms: []Platform{
			{X: 0, Y: groundY, W: 800, H: 50, Surface: SurfaceGrass},
			{X: 300, Y: 420, W: 120, H: 20, Surface: SurfaceStone},
		},
		Enemies: []Enemy{
			{X: 0, Y: groundY - 20, W: 20, H: 20, Speed: 1, PatrolStart: 500, PatrolEnd: 640},
		},
		Collectibles: []Collectible{
			{X: 150, Y: groundY - 30, W: 16, H: 16, Value: 10},
			{X: 340, Y: 390, W: 16, H: 16, Value: 25},
		},
		Goal: &Goal{X: 760, Y: groundY - 64},
	}
}

// mapProvider serves levels from a map and counts loads.
type mapProvider struct {
	levels map[int]*Level
	loads  int
}

func newMapProvider(levels ...*Level) *mapProvider {
	p := &mapProvider{levels: make(map[int]*Level)}
	for _, l := range levels {
		p.levels[l.ID] = l
	}
	return p
}

func (p *mapProvider) Load(id int) (*Level, error) {
	p.loads++
	l, ok := p.levels[id]
	if !ok {
		return nil, fmt.Errorf("level %d: %w", id, ErrLevelNotFound)
	}
	return l, nil
}

// newTestLoop returns a running loop on lvl with a fresh run state.
func newTestLoop(lvl *Level, lives int) (*Loop, *RunState) {
	run := NewRunState(lives)
	loop := NewLoop(newMapProvider(lvl), DefaultParams(), run)
	if err := loop.LoadLevel(lvl.ID); err != nil {
		panic(err)
	}
	return loop, run
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
