package bulletbounce

import (
	"fmt"

	"github.com/mgrishin/arcade-hub/internal/core"
)

// Visual characters for rendering.
const (
	PlayerChar = '◉'
	BulletChar = '•'
	BorderChar = '▓'
)

// Render draws the arena, bullets, player, and HUD to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Arena border on the screen edge.
	w, h := dst.Width(), dst.Height()
	for x := 0; x < w; x++ {
		dst.SetCell(x, 1, BorderChar, core.ColorGray)
		dst.SetCell(x, h-1, BorderChar, core.ColorGray)
	}
	for y := 1; y < h; y++ {
		dst.SetCell(0, y, BorderChar, core.ColorGray)
		dst.SetCell(w-1, y, BorderChar, core.ColorGray)
	}

	for i := range g.bullets {
		b := &g.bullets[i]
		x, y := g.worldToCell(dst, b.X, b.Y)
		dst.SetCell(x, y, BulletChar, core.ColorBrightYellow)
	}

	px, py := g.worldToCell(dst, g.playerX, g.playerY)
	dst.SetCell(px, py, PlayerChar, core.ColorBrightCyan)

	g.drawHUD(dst)

	switch g.state {
	case StateStarting:
		countdown := g.stateTimer/60 + 1
		g.drawCenteredMessage(dst, fmt.Sprintf("GET READY: %d", countdown), "Dodge the ricochets!")
	case StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// worldToCell projects a world point onto screen cells.
func (g *Game) worldToCell(dst *core.Screen, wx, wy float64) (int, int) {
	x := int(wx / g.cfg.Arena.Width * float64(dst.Width()))
	y := int(wy / g.cfg.Arena.Height * float64(dst.Height()))
	return core.Clamp(x, 0, dst.Width()-1), core.Clamp(y, 0, dst.Height()-1)
}

// drawHUD renders health, survival time, and score.
func (g *Game) drawHUD(dst *core.Screen) {
	seconds := g.timer / 60
	hud := fmt.Sprintf(" HP: %d  Time: %d:%02d  Score: %d  Bullets: %d ",
		g.health, seconds/60, seconds%60, g.score, len(g.bullets))
	dst.DrawText(2, 0, hud)

	// Health bar on the right.
	const barWidth = 10
	filled := g.health * barWidth / g.cfg.Player.Health
	bar := ""
	for i := 0; i < barWidth; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	color := core.ColorBrightGreen
	if g.health <= g.cfg.Player.Health/3 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(dst.Width()-barWidth-2, 0, bar, color)
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
