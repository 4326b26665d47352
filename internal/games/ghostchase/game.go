// Package ghostchase implements Ghost Chase, a maze escape game. The runner
// gathers orbs while a ghost hunts it through walls only the ghost can
// cross; collecting every orb opens the exit in the ghost's corner.
package ghostchase

import (
	"math/rand"

	"github.com/mgrishin/arcade-hub/internal/config"
	"github.com/mgrishin/arcade-hub/internal/core"
	"github.com/mgrishin/arcade-hub/internal/registry"
)

// Game states.
const (
	StateStarting = "starting"
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "game_over"
	StateEscaped  = "escaped"
)

// Loss reasons, for the game over overlay.
const (
	lossCaught  = "caught"
	lossTimeout = "timeout"
)

// Orb is a collectible pickup on a maze floor cell.
type Orb struct {
	X, Y      int
	Collected bool
}

// Game implements the Ghost Chase game logic.
type Game struct {
	maze *Maze
	orbs []Orb

	runnerX, runnerY int
	ghostX, ghostY   int
	runnerCooldown   int
	ghostCooldown    int

	collected  int
	exitOpen   bool
	lossReason string

	state      string
	stateTimer int
	score      int
	timer      int // Ticks spent in PLAYING
	tickCount  int

	runtime    core.RuntimeConfig
	cfg        config.GhostChaseConfig
	difficulty *config.DifficultyManager
}

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// New creates a new Ghost Chase game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ghostchase"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ghost Chase"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadGhostChase(configPath)
	if err != nil {
		cfg = config.DefaultGhostChaseConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGhostChasePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.maze = NewMaze(cfg.Maze.Width, cfg.Maze.Height, cfg.Maze.GhostPathsMin, cfg.Maze.GhostPathsMax, rng)
	g.placeOrbs(rng)

	g.runnerX, g.runnerY = g.maze.RunnerStart()
	g.ghostX, g.ghostY = g.maze.GhostStart()
	g.runnerCooldown = 0
	g.ghostCooldown = cfg.Ghost.MoveEvery

	g.collected = 0
	g.exitOpen = false
	g.lossReason = ""

	g.state = StateStarting
	g.stateTimer = cfg.Round.StartTicks
	g.score = 0
	g.timer = 0
	g.tickCount = 0
}

// placeOrbs scatters orbs over floor cells away from the spawn corners.
func (g *Game) placeOrbs(rng *rand.Rand) {
	gx, gy := g.maze.GhostStart()
	rx, ry := g.maze.RunnerStart()

	var floor [][2]int
	for _, c := range g.maze.FloorCells() {
		if (c[0] == gx && c[1] == gy) || (c[0] == rx && c[1] == ry) {
			continue
		}
		floor = append(floor, c)
	}

	n := g.cfg.Round.Orbs
	if n > len(floor) {
		n = len(floor)
	}

	g.orbs = make([]Orb, 0, n)
	order := rng.Perm(len(floor))
	for i := 0; i < n; i++ {
		c := floor[order[i]]
		g.orbs = append(g.orbs, Orb{X: c[0], Y: c[1]})
	}
}

// Step advances the game by one tick: runner movement, orb collection,
// ghost pursuit, catch check, escape check, and the round timer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var sounds []core.SoundEvent
	g.tickCount++

	switch g.state {
	case StateStarting:
		g.stateTimer--
		if g.stateTimer <= 0 {
			g.state = StatePlaying
		}
		return g.result(sounds)

	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}
		return g.result(sounds)

	case StateGameOver, StateEscaped:
		return g.result(sounds)
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return g.result(sounds)
	}

	g.timer++

	g.moveRunner(in)

	// Orb collection.
	for i := range g.orbs {
		o := &g.orbs[i]
		if o.Collected || o.X != g.runnerX || o.Y != g.runnerY {
			continue
		}
		o.Collected = true
		g.collected++
		g.score += g.cfg.Scoring.OrbPoints
		sounds = append(sounds, core.SoundPickup)

		if g.collected == len(g.orbs) && !g.exitOpen {
			g.exitOpen = true
			sounds = append(sounds, core.SoundPowerup)
		}
	}

	g.moveGhost()

	// Caught: the ghost shares the runner's cell.
	if g.ghostX == g.runnerX && g.ghostY == g.runnerY {
		g.state = StateGameOver
		g.lossReason = lossCaught
		sounds = append(sounds, core.SoundFall)
		return g.result(sounds)
	}

	// Escape through the open exit.
	ex, ey := g.maze.ExitCell()
	if g.exitOpen && g.runnerX == ex && g.runnerY == ey {
		g.state = StateEscaped
		sounds = append(sounds, core.SoundSuccess)

		tickRate := g.runtime.TickRate
		if tickRate <= 0 {
			tickRate = 60
		}
		remaining := (g.cfg.Round.TimeLimitTicks - g.timer) / tickRate
		if remaining > 0 {
			g.score += remaining * g.cfg.Scoring.EscapeBonusRate
		}
		return g.result(sounds)
	}

	// Round timer.
	if g.timer >= g.cfg.Round.TimeLimitTicks {
		g.state = StateGameOver
		g.lossReason = lossTimeout
		sounds = append(sounds, core.SoundFall)
	}

	return g.result(sounds)
}

// moveRunner applies one grid step of directional input, rate-limited by
// the runner's move cooldown. Walls block, ghost paths included.
func (g *Game) moveRunner(in core.InputFrame) {
	if g.runnerCooldown > 0 {
		g.runnerCooldown--
		return
	}

	dx, dy := 0, 0
	switch {
	case in.Has(core.ActionUp):
		dy = -1
	case in.Has(core.ActionDown):
		dy = 1
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	default:
		return
	}

	nx, ny := g.runnerX+dx, g.runnerY+dy
	if !g.maze.Walkable(nx, ny, false) {
		return
	}
	g.runnerX, g.runnerY = nx, ny
	g.runnerCooldown = g.cfg.Runner.MoveEvery
}

// moveGhost advances the ghost one shortest-path step toward the runner on
// its own cadence. Difficulty progression shortens the cadence over time,
// never below a floor of 4 ticks.
func (g *Game) moveGhost() {
	if g.ghostCooldown > 0 {
		g.ghostCooldown--
		return
	}

	nx, ny, ok := g.maze.NextStepToward(g.ghostX, g.ghostY, g.runnerX, g.runnerY, true)
	if ok {
		g.ghostX, g.ghostY = nx, ny
	}

	delay := float64(g.cfg.Ghost.MoveEvery) / g.difficulty.Speed(1.0, g.score, g.timer)
	g.ghostCooldown = core.Max(int(delay), 4)
}

// result packages the current state and this tick's sounds.
func (g *Game) result(sounds []core.SoundEvent) core.StepResult {
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateEscaped,
		Won:      g.state == StateEscaped,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("ghostchase", func() registry.Game {
		return New()
	})
}
