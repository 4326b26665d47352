// Package bulletbounce implements Bullet Bounce, a survival dodge arena.
// Bullets stream in from the arena edges aimed at the player and ricochet
// off the walls; the player trades position for time, scoring by surviving.
package bulletbounce

import (
	"math"
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
)

// Ticks shown in the starting countdown.
const startTicks = 120

// Game implements the Bullet Bounce game logic.
type Game struct {
	playerX, playerY float64
	health           int

	bullets    []Bullet
	spawnTimer int
	rng        *rand.Rand

	state      string
	stateTimer int
	score      int
	timer      int // Ticks spent in PLAYING
	tickCount  int

	runtime    core.RuntimeConfig
	cfg        config.BulletBounceConfig
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

// New creates a new Bullet Bounce game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bulletbounce"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bullet Bounce"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBulletBounce(configPath)
	if err != nil {
		cfg = config.DefaultBulletBounceConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBulletBouncePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.playerX = cfg.Arena.Width / 2
	g.playerY = cfg.Arena.Height / 2
	g.health = cfg.Player.Health

	g.bullets = g.bullets[:0]
	g.spawnTimer = cfg.Bullets.SpawnEvery

	g.state = StateStarting
	g.stateTimer = startTicks
	g.score = 0
	g.timer = 0
	g.tickCount = 0
}

// Step advances the game by one tick: player movement, bullet spawning and
// flight, hit detection, and survival scoring.
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

	case StateGameOver:
		return g.result(sounds)
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return g.result(sounds)
	}

	g.timer++

	g.movePlayer(in)
	g.spawnBullets()

	// Bullet flight, wall bounces, and hit detection in one pass.
	kept := g.bullets[:0]
	for i := range g.bullets {
		b := &g.bullets[i]
		alive, bounced := b.Update(
			g.cfg.Arena.Width, g.cfg.Arena.Height,
			g.cfg.Bullets.Radius, g.cfg.Bullets.AngleJitter,
			g.cfg.Bullets.MaxBounces, g.cfg.Bullets.Lifetime,
			g.rng,
		)
		if bounced {
			sounds = append(sounds, core.SoundDrop)
		}
		if alive && b.Hits(g.playerX, g.playerY, g.cfg.Player.Radius, g.cfg.Bullets.Radius) {
			g.health -= g.cfg.Player.HitDamage
			sounds = append(sounds, core.SoundFall)
			continue // The bullet is spent on impact
		}
		if alive {
			kept = append(kept, *b)
		}
	}
	g.bullets = kept

	if g.health <= 0 {
		g.state = StateGameOver
		return g.result(sounds)
	}

	// Survival scoring, once per second.
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	if g.timer%tickRate == 0 {
		g.score += g.cfg.Scoring.PointsPerSecond
	}

	return g.result(sounds)
}

// movePlayer applies continuous directional movement, clamped to keep the
// player circle inside the arena.
func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.cfg.Player.Speed
	if in.Has(core.ActionUp) {
		g.playerY -= speed
	}
	if in.Has(core.ActionDown) {
		g.playerY += speed
	}
	if in.Has(core.ActionLeft) {
		g.playerX -= speed
	}
	if in.Has(core.ActionRight) {
		g.playerX += speed
	}

	r := g.cfg.Player.Radius
	g.playerX = core.ClampF(g.playerX, r, g.cfg.Arena.Width-r)
	g.playerY = core.ClampF(g.playerY, r, g.cfg.Arena.Height-r)
}

// spawnBullets emits a bullet from a random arena edge aimed at the player,
// on a cadence that tightens as difficulty progresses.
func (g *Game) spawnBullets() {
	g.spawnTimer--
	if g.spawnTimer > 0 {
		return
	}
	g.spawnTimer = g.difficulty.Spacing(g.cfg.Bullets.SpawnEvery, g.score, g.timer)

	if len(g.bullets) >= g.cfg.Bullets.MaxActive {
		return
	}

	var x, y float64
	switch g.rng.Intn(4) {
	case 0: // Top
		x, y = g.rng.Float64()*g.cfg.Arena.Width, 0
	case 1: // Bottom
		x, y = g.rng.Float64()*g.cfg.Arena.Width, g.cfg.Arena.Height
	case 2: // Left
		x, y = 0, g.rng.Float64()*g.cfg.Arena.Height
	default: // Right
		x, y = g.cfg.Arena.Width, g.rng.Float64()*g.cfg.Arena.Height
	}

	angle := math.Atan2(g.playerY-y, g.playerX-x)
	angle += (g.rng.Float64()*2 - 1) * g.cfg.Bullets.AngleJitter

	speed := g.difficulty.Speed(g.cfg.Bullets.Speed, g.score, g.timer)
	g.bullets = append(g.bullets, Bullet{
		X:    x,
		Y:    y,
		VelX: math.Cos(angle) * speed,
		VelY: math.Sin(angle) * speed,
	})
}

// result packages the current state and this tick's sounds.
func (g *Game) result(sounds []core.SoundEvent) core.StepResult {
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Won:      false,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("bulletbounce", func() registry.Game {
		return New()
	})
}
