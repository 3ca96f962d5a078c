package platformer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.raster == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.loop == nil || g.loop.Level() == nil {
		g.renderLoadError(dst)
		return
	}

	g.raster.Draw(dst, sim.Project(g.loop.View()))
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	// Score on left
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %06d", g.State().Score), core.ColorBrightYellow)

	// Lives and coins in center
	lives := strings.Repeat("♥", core.Clamp(g.run.Lives, 0, 9))
	mid := fmt.Sprintf("%s  COINS %d", lives, g.run.Coins)
	dst.DrawTextCentered(0, mid)

	// Level on right
	levelText := fmt.Sprintf("LEVEL %d", g.levelID)
	if i := slices.Index(g.order, g.levelID); i >= 0 {
		levelText = fmt.Sprintf("LEVEL %d/%d", i+1, len(g.order))
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.finished:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.total)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)

	case g.loop.Outcome() == sim.OutcomeLevelComplete:
		subtitle := fmt.Sprintf("Level score: %d  |  ENTER for next level", g.last.Score)
		g.drawCenteredBox(dst, fmt.Sprintf("%s COMPLETE", strings.ToUpper(g.loop.Level().Name)), subtitle)

	case g.loop.Outcome() == sim.OutcomeGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.last.Total)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case g.loop.State() == sim.StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case g.tickCount == 0:
		// Level name on the top playfield row.
		dst.DrawTextCentered(hudRows, g.loop.Level().Name)
	}
}

func (g *Game) renderLoadError(dst *core.Screen) {
	title := "NO LEVEL"
	subtitle := "Press R to restart, Q to quit"
	if g.startErr != nil {
		title = fmt.Sprintf("Cannot load level %d", g.levelID)
	}
	g.drawCenteredBox(dst, title, subtitle)
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
