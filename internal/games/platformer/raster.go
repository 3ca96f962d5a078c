package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// Minimum playable screen size in cells.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// glyph says how a draw kind appears in a cell grid. Detail glyphs are
// skipped when their box is smaller than one cell.
type glyph struct {
	r      rune
	detail bool
}

var glyphs = map[sim.DrawKind]glyph{
	sim.DrawCloud:          {'░', false},
	sim.DrawPlatform:       {'█', false},
	sim.DrawCoin:           {'●', false},
	sim.DrawCoinHighlight:  {'•', true},
	sim.DrawEnemy:          {'▓', false},
	sim.DrawEnemyEye:       {'•', true},
	sim.DrawGoalPole:       {'│', false},
	sim.DrawGoalFlag:       {'▶', false},
	sim.DrawGoalPattern:    {'▒', true},
	sim.DrawPlayer:         {'█', false},
	sim.DrawPlayerHat:      {'▀', true},
	sim.DrawPlayerEye:      {'•', true},
	sim.DrawPlayerOveralls: {'▄', true},
}

var paintColors = map[sim.Paint]core.Color{
	sim.PaintCloud:     core.ColorBrightWhite,
	sim.PaintGrass:     core.ColorGreen,
	sim.PaintStone:     core.ColorBrown,
	sim.PaintRock:      core.ColorGray,
	sim.PaintBorder:    core.ColorBlack,
	sim.PaintGold:      core.ColorBrightYellow,
	sim.PaintGoldLight: core.ColorBrightWhite,
	sim.PaintEnemy:     core.ColorOrange,
	sim.PaintEnemyEye:  core.ColorBrightRed,
	sim.PaintFlag:      core.ColorBrightGreen,
	sim.PaintFlagDark:  core.ColorGreen,
	sim.PaintPlayer:    core.ColorBrightRed,
	sim.PaintHat:       core.ColorRed,
	sim.PaintEye:       core.ColorBlack,
	sim.PaintOveralls:  core.ColorBlue,
}

// PaintColor maps a draw list paint to the nearest terminal color.
func PaintColor(p sim.Paint) core.Color {
	return paintColors[p]
}

// Raster maps canvas units onto a character screen below the HUD.
type Raster struct {
	w, h   int
	sx, sy float64
}

// NewRaster creates a raster for a w x h screen showing a canvasW x canvasH world.
// Screens below the minimum playable size return sim.ErrRenderTargetUnavailable.
func NewRaster(w, h int, canvasW, canvasH float64) (*Raster, error) {
	if w < MinScreenW || h < MinScreenH {
		return nil, fmt.Errorf("screen %dx%d, need %dx%d: %w", w, h, MinScreenW, MinScreenH, sim.ErrRenderTargetUnavailable)
	}
	if canvasW <= 0 || canvasH <= 0 {
		return nil, fmt.Errorf("canvas %.0fx%.0f: %w", canvasW, canvasH, sim.ErrRenderTargetUnavailable)
	}
	return &Raster{
		w:  w,
		h:  h,
		sx: float64(w) / canvasW,
		sy: float64(h-hudRows) / canvasH,
	}, nil
}

// Size returns the screen size the raster was built for.
func (r *Raster) Size() (int, int) {
	return r.w, r.h
}

// Cell maps a canvas box to its screen rectangle.
func (r *Raster) Cell(b core.Box) core.Rect {
	rect := b.Scale(r.sx, r.sy)
	rect.Y += hudRows
	return rect
}

// Draw paints the draw list in order. Later commands overwrite earlier ones.
func (r *Raster) Draw(dst *core.Screen, cmds []sim.DrawCmd) {
	for _, cmd := range cmds {
		g, ok := glyphs[cmd.Kind]
		if !ok {
			// Background is the cleared screen; outlines are thinner than a cell.
			continue
		}
		if g.detail && (cmd.Box.W*r.sx < 1 || cmd.Box.H*r.sy < 1) {
			continue
		}

		rect := r.Cell(cmd.Box)
		if rect.Y < hudRows {
			rect.H -= hudRows - rect.Y
			rect.Y = hudRows
		}
		dst.DrawRect(rect, g.r, PaintColor(cmd.Paint))
	}
}
