package ghostchase

import (
	"fmt"

	"github.com/mgrishin/arcade-hub/internal/core"
)

// Visual characters for rendering. Maze cells are drawn two columns wide
// so the grid looks square in a terminal.
const (
	WallChar      = '▓'
	GhostPathChar = '░'
	OrbChar       = '●'
	ExitChar      = '◊'
	RunnerChar    = '@'
	GhostChar     = 'G'
)

// Render draws the maze, actors, and HUD to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	offX := (dst.Width() - g.maze.W*2) / 2
	offY := (dst.Height() - g.maze.H) / 2
	if offY < 1 {
		offY = 1
	}

	for y := 0; y < g.maze.H; y++ {
		for x := 0; x < g.maze.W; x++ {
			if !g.maze.IsWall(x, y) {
				continue
			}
			char, color := WallChar, core.ColorGray
			if g.maze.IsGhostPath(x, y) {
				char, color = GhostPathChar, core.ColorMagenta
			}
			dst.SetCell(offX+x*2, offY+y, char, color)
			dst.SetCell(offX+x*2+1, offY+y, char, color)
		}
	}

	for _, o := range g.orbs {
		if o.Collected {
			continue
		}
		dst.SetCell(offX+o.X*2, offY+o.Y, OrbChar, core.ColorBrightYellow)
	}

	if g.exitOpen {
		ex, ey := g.maze.ExitCell()
		dst.SetCell(offX+ex*2, offY+ey, ExitChar, core.ColorBrightGreen)
	}

	dst.SetCell(offX+g.ghostX*2, offY+g.ghostY, GhostChar, core.ColorBrightRed)
	dst.SetCell(offX+g.runnerX*2, offY+g.runnerY, RunnerChar, core.ColorBrightCyan)

	g.drawHUD(dst)

	switch g.state {
	case StateStarting:
		countdown := g.stateTimer/60 + 1
		g.drawCenteredMessage(dst, fmt.Sprintf("GET READY: %d", countdown), "Grab the orbs, dodge the ghost!")
	case StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		title := "TIME UP"
		if g.lossReason == lossCaught {
			title = "CAUGHT!"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case StateEscaped:
		g.drawCenteredMessage(dst, "ESCAPED!", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	}
}

// drawHUD renders the orb count, remaining time, and score.
func (g *Game) drawHUD(dst *core.Screen) {
	remaining := (g.cfg.Round.TimeLimitTicks - g.timer) / 60
	if remaining < 0 {
		remaining = 0
	}
	hud := fmt.Sprintf(" Orbs: %d/%d  Time: %d:%02d  Score: %d ",
		g.collected, len(g.orbs), remaining/60, remaining%60, g.score)
	dst.DrawText(2, 0, hud)

	if g.exitOpen {
		dst.DrawTextColor(dst.Width()-14, 0, " EXIT OPEN! ", core.ColorBrightGreen)
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
