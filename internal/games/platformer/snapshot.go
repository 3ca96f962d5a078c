package platformer

import "math"

// Snapshot contains the campaign state for replay and determinism checks.
// Positions are stored in hundredths of a canvas unit.
type Snapshot struct {
	Tick     uint64
	Frame    int
	LevelID  int
	State    string
	Score    int
	Total    int
	Lives    int
	Coins    int
	Finished bool

	PlayerX, PlayerY   int
	PlayerVX, PlayerVY int

	// Each enemy is 2 ints: X, VX
	EnemyData []int

	// One int per collectible: 1 if collected
	CollectedData []int
}

func centi(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     uint64(g.tickCount), //#nosec G115 -- tick count is never negative
		LevelID:  g.levelID,
		Total:    g.total,
		Finished: g.finished,
	}
	if g.loop == nil {
		return snap
	}

	snap.Frame = g.loop.Frame()
	snap.State = g.loop.State().String()
	snap.Score = g.run.Score
	snap.Lives = g.run.Lives
	snap.Coins = g.run.Coins

	if p := g.loop.Player(); p != nil {
		snap.PlayerX, snap.PlayerY = centi(p.X), centi(p.Y)
		snap.PlayerVX, snap.PlayerVY = centi(p.VX), centi(p.VY)
	}

	if lvl := g.loop.Level(); lvl != nil {
		snap.EnemyData = make([]int, 0, len(lvl.Enemies)*2)
		for _, e := range lvl.Enemies {
			snap.EnemyData = append(snap.EnemyData, centi(e.X), centi(e.VX))
		}
		snap.CollectedData = make([]int, len(lvl.Collectibles))
		for i, c := range lvl.Collectibles {
			if c.Collected {
				snap.CollectedData[i] = 1
			}
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Frame, snap.LevelID, snap.Score, snap.Total, snap.Lives, snap.Coins,
		snap.PlayerX, snap.PlayerY, snap.PlayerVX, snap.PlayerVY,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	if snap.Finished {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.CollectedData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
