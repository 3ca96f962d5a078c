package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// View is what the projection reads. It must be treated as read-only.
type View struct {
	Level   *Level
	Player  *Player
	Frame   int
	CanvasW float64
	CanvasH float64
}

// DrawKind identifies what a draw command depicts.
type DrawKind int

const (
	DrawBackground DrawKind = iota
	DrawCloud
	DrawPlatform
	DrawPlatformBorder
	DrawCoin
	DrawCoinHighlight
	DrawEnemy
	DrawEnemyEye
	DrawGoalPole
	DrawGoalFlag
	DrawGoalPattern
	DrawPlayer
	DrawPlayerHat
	DrawPlayerEye
	DrawPlayerOveralls
)

// Paint is a fill colour in #RRGGBB form.
type Paint string

// Palette.
const (
	PaintSky       Paint = "#87CEEB"
	PaintCloud     Paint = "#FFFFFF"
	PaintGrass     Paint = "#7CB342"
	PaintStone     Paint = "#8B7355"
	PaintRock      Paint = "#666666"
	PaintBorder    Paint = "#333333"
	PaintGold      Paint = "#FFD700"
	PaintGoldLight Paint = "#FFF8DC"
	PaintEnemy     Paint = "#8B4513"
	PaintEnemyEye  Paint = "#FF0000"
	PaintPole      Paint = "#8B7355"
	PaintFlag      Paint = "#4CAF50"
	PaintFlagDark  Paint = "#2E7D32"
	PaintPlayer    Paint = "#FF6B6B"
	PaintHat       Paint = "#E52521"
	PaintEye       Paint = "#000000"
	PaintOveralls  Paint = "#4169E1"
)

// Draw sizes that do not come from level data.
const (
	CoinDrawSize = 16.0
	PoleHeight   = 64.0
)

// DrawCmd is one filled rectangle in canvas units.
type DrawCmd struct {
	Kind  DrawKind
	Box   core.Box
	Paint Paint
}

// Project converts the current state into an ordered draw list:
// background, platforms, collectibles, enemies, goal, player.
// It never mutates the view. Animation derives from the frame counter only.
func Project(v View) []DrawCmd {
	cmds := make([]DrawCmd, 0, 64)
	cmds = projectBackground(cmds, v)
	if v.Level == nil {
		return cmds
	}

	cmds = projectPlatforms(cmds, v.Level.Platforms)
	cmds = projectCollectibles(cmds, v.Level.Collectibles, v.Frame)
	cmds = projectEnemies(cmds, v.Level.Enemies)
	if v.Level.Goal != nil {
		cmds = projectGoal(cmds, *v.Level.Goal)
	}
	if v.Player != nil {
		cmds = projectPlayer(cmds, *v.Player)
	}
	return cmds
}

func rect(kind DrawKind, paint Paint, x, y, w, h float64) DrawCmd {
	return DrawCmd{Kind: kind, Paint: paint, Box: core.Box{X: x, Y: y, W: w, H: h}}
}

func projectBackground(cmds []DrawCmd, v View) []DrawCmd {
	cmds = append(cmds, rect(DrawBackground, PaintSky, 0, 0, v.CanvasW, v.CanvasH))

	f := float64(v.Frame)
	cmds = append(cmds,
		rect(DrawCloud, PaintCloud, 100+math.Mod(f/2, 1000), 50, 80, 30),
		rect(DrawCloud, PaintCloud, 300+math.Mod(f/3, 1000), 120, 60, 25),
		rect(DrawCloud, PaintCloud, 500+math.Mod(f/4, 1000), 80, 100, 35),
	)
	return cmds
}

func projectPlatforms(cmds []DrawCmd, platforms []Platform) []DrawCmd {
	for _, p := range platforms {
		paint := PaintRock
		switch p.Surface {
		case SurfaceGrass:
			paint = PaintGrass
		case SurfaceStone:
			paint = PaintStone
		}
		b := p.Box()
		cmds = append(cmds,
			DrawCmd{Kind: DrawPlatform, Paint: paint, Box: b},
			DrawCmd{Kind: DrawPlatformBorder, Paint: PaintBorder, Box: b},
		)
	}
	return cmds
}

// CoinBob returns the vertical coin offset for a frame.
func CoinBob(frame int) float64 {
	return math.Sin(float64(frame)*0.1) * 2
}

func projectCollectibles(cmds []DrawCmd, items []Collectible, frame int) []DrawCmd {
	bob := CoinBob(frame)
	for _, c := range items {
		if c.Collected {
			continue
		}
		cmds = append(cmds,
			rect(DrawCoin, PaintGold, c.X, c.Y+bob, CoinDrawSize, CoinDrawSize),
			rect(DrawCoinHighlight, PaintGoldLight, c.X+2, c.Y+bob+2, 6, 6),
		)
	}
	return cmds
}

func projectEnemies(cmds []DrawCmd, enemies []Enemy) []DrawCmd {
	for _, e := range enemies {
		b := e.Box()
		cmds = append(cmds,
			DrawCmd{Kind: DrawEnemy, Paint: PaintEnemy, Box: b},
			rect(DrawEnemyEye, PaintEnemyEye, b.X+3, b.Y+3, 4, 4),
			rect(DrawEnemyEye, PaintEnemyEye, b.Right()-7, b.Y+3, 4, 4),
		)
	}
	return cmds
}

func projectGoal(cmds []DrawCmd, g Goal) []DrawCmd {
	top := g.Y - PoleHeight
	return append(cmds,
		rect(DrawGoalPole, PaintPole, g.X, top, 4, PoleHeight),
		rect(DrawGoalFlag, PaintFlag, g.X+4, top, 28, 20),
		rect(DrawGoalPattern, PaintFlagDark, g.X+8, top+4, 8, 4),
		rect(DrawGoalPattern, PaintFlagDark, g.X+20, top+8, 8, 4),
		rect(DrawGoalPattern, PaintFlagDark, g.X+8, top+12, 8, 4),
	)
}

func projectPlayer(cmds []DrawCmd, p Player) []DrawCmd {
	cmds = append(cmds,
		rect(DrawPlayer, PaintPlayer, p.X, p.Y, p.W, p.H),
		rect(DrawPlayerHat, PaintHat, p.X+2, p.Y, p.W-4, 8),
	)

	// Eyes sit toward the facing side.
	eyeX := p.X + 9
	if p.Facing == FacingLeft {
		eyeX = p.X + 6
	}
	cmds = append(cmds,
		rect(DrawPlayerEye, PaintEye, eyeX, p.Y+10, 3, 3),
		rect(DrawPlayerEye, PaintEye, eyeX+6, p.Y+10, 3, 3),
		rect(DrawPlayerOveralls, PaintOveralls, p.X+4, p.Y+16, p.W-8, 12),
	)
	return cmds
}
