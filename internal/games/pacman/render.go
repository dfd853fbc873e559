package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

const (
	wallRune   = '█'
	pelletRune = '·'
)

// Render draws the map, then the player, then every adversary in creation
// order, so later adversaries cover earlier ones on a shared cell. It reads
// state only.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.grid.Cols()*cellWidth, g.grid.Rows()+hudHeight))
		return
	}

	g.renderMap(dst)
	g.renderPlayer(dst)
	g.renderAdversaries(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, fmt.Sprintf("GAME OVER! Score: %d", g.score), "Press R to play again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Pellets: %d", g.Title(), g.score, g.grid.PelletsLeft())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// screenPos converts a grid cell to screen coordinates.
func (g *Game) screenPos(p core.Point) (int, int) {
	return g.mapOffsetX + p.X*cellWidth, g.mapOffsetY + p.Y
}

func (g *Game) renderMap(dst *core.Screen) {
	for y := 0; y < g.grid.Rows(); y++ {
		for x := 0; x < g.grid.Cols(); x++ {
			sx, sy := g.screenPos(core.Pt(x, y))
			switch g.grid.TileAt(x, y) {
			case TileWall:
				// Filled block: foreground and background share the color
				for i := 0; i < cellWidth; i++ {
					dst.SetCellBg(sx+i, sy, wallRune, core.ColorNavy, core.ColorNavy)
				}
			case TilePellet:
				dst.SetCell(sx, sy, pelletRune, core.ColorPeach)
			}
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	elapsedMs := int64(g.player.phase) * 1000 / int64(g.tickRate)
	angle := MouthAngle(elapsedMs, g.cfg.Player.MouthPeriodMs)

	sx, sy := g.screenPos(g.player.Position())
	dst.SetCell(sx, sy, Glyph(g.player.Direction(), angle), core.ColorYellow)
}

func (g *Game) renderAdversaries(dst *core.Screen) {
	for _, a := range g.adversaries {
		sx, sy := g.screenPos(a.Position())
		dst.SetCell(sx, sy, AdversaryGlyph, a.Color())
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
