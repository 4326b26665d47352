package stackdash

import (
	"fmt"

	"github.com/mgrishin/arcade-hub/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▓'
	BridgeChar   = '▬'
	TileChar     = '▪'
	PowerUpChar  = '●'
	FinishChar   = '║'
)

// Render draws the current game state to the screen. All world geometry is
// projected through the camera onto terminal cells; entities themselves
// carry no visual state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, plat := range g.level.Platforms {
		char, color := PlatformChar, core.ColorGray
		if plat.Bridge {
			char, color = BridgeChar, core.ColorBrightCyan
		}
		g.drawWorldRect(dst, plat.Rect(), char, color)
	}

	for _, t := range g.level.Tiles {
		if t.Collected {
			continue
		}
		x, y := g.worldToCell(dst, t.X, t.Y)
		dst.SetCell(x, y, TileChar, core.ColorBrightBlue)
	}

	for _, p := range g.level.PowerUps {
		if p.Collected {
			continue
		}
		x, y := g.worldToCell(dst, p.X, p.Y)
		dst.SetCell(x, y, PowerUpChar, powerUpColor(p.Kind))
	}

	g.drawWorldRect(dst, g.level.Finish, FinishChar, core.ColorBrightYellow)

	g.drawWorldRect(dst, g.player.Rect(), PlayerChar, core.ColorBrightRed)

	g.drawHUD(dst)

	switch g.state {
	case StateStarting:
		countdown := g.stateTimer/60 + 1
		g.drawCenteredMessage(dst, fmt.Sprintf("GET READY: %d", countdown), "Collect tiles, bridge the gaps!")
	case StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case StateLevelComplete:
		g.drawCenteredMessage(dst, "LEVEL COMPLETE!", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	}
}

// worldToCell projects a world point onto screen cells through the camera.
func (g *Game) worldToCell(dst *core.Screen, wx, wy float64) (int, int) {
	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height
	return int((wx - g.cameraX) * sx), int(wy * sy)
}

// drawWorldRect fills the projected cell area of a world rect, always at
// least one cell so thin entities stay visible.
func (g *Game) drawWorldRect(dst *core.Screen, r core.RectF, char rune, color core.Color) {
	x1, y1 := g.worldToCell(dst, r.X, r.Y)
	x2, y2 := g.worldToCell(dst, r.Right(), r.Bottom())
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			dst.SetCell(x, y, char, color)
		}
	}
}

// powerUpColor maps power-up kinds to display colors.
func powerUpColor(kind PowerUpKind) core.Color {
	switch kind {
	case PowerUpSpeed:
		return core.ColorBrightYellow
	case PowerUpJump:
		return core.ColorBrightGreen
	default:
		return core.ColorBrightMagenta
	}
}

// drawHUD renders the score line and active effect indicators.
func (g *Game) drawHUD(dst *core.Screen) {
	seconds := g.timer / 60
	hud := fmt.Sprintf(" Score: %d  Time: %d:%02d  Tiles: %d/%d ",
		g.score, seconds/60, seconds%60, g.player.Tiles, g.cfg.Player.MaxTiles)
	dst.DrawText(2, 0, hud)

	progress := int(core.ClampF(g.player.X/g.level.Width, 0, 1) * 100)
	progressText := fmt.Sprintf(" %d%% ", progress)
	dst.DrawText(dst.Width()-len(progressText)-2, 0, progressText)

	// Active effect badges under the score line.
	x := 2
	for _, e := range g.player.Effects {
		badge := fmt.Sprintf("[%s %ds]", effectName(e.Kind), e.TicksLeft/60+1)
		dst.DrawTextColor(x, 1, badge, effectColor(e.Kind))
		x += len(badge) + 1
	}
}

// effectName maps effect kinds to badge labels.
func effectName(kind EffectKind) string {
	switch kind {
	case EffectSpeed:
		return "SPD"
	case EffectJump:
		return "JMP"
	default:
		return "MAG"
	}
}

// effectColor maps effect kinds to badge colors.
func effectColor(kind EffectKind) core.Color {
	switch kind {
	case EffectSpeed:
		return core.ColorBrightYellow
	case EffectJump:
		return core.ColorBrightGreen
	default:
		return core.ColorBrightMagenta
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
