// Package stackdash implements Stack Dash, a side-scrolling runner where
// the player banks collectible tiles and spends them as bridges over gaps.
// The simulation runs in continuous world units on a fixed tick and is
// fully deterministic for a given seed and input sequence.
package stackdash

import (
	"github.com/mgrishin/arcade-hub/internal/config"
	"github.com/mgrishin/arcade-hub/internal/core"
	"github.com/mgrishin/arcade-hub/internal/registry"
)

// Game states.
const (
	StateStarting      = "starting"
	StatePlaying       = "playing"
	StatePaused        = "paused"
	StateGameOver      = "game_over"
	StateLevelComplete = "level_complete"
)

// Game implements the Stack Dash game logic.
type Game struct {
	player   *Player
	level    *Level
	resolver Resolver

	state      string
	stateTimer int // Countdown for the STARTING state
	score      int
	timer      int // Ticks spent in PLAYING
	tickCount  int
	cameraX    float64

	runtime    core.RuntimeConfig
	cfg        config.StackDashConfig
	difficulty *config.DifficultyManager
}

// configPath stores the custom config path set via CLI
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
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Stack Dash game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "stackdash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Stack Dash"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadStackDash(configPath)
	if err != nil {
		cfg = config.DefaultStackDashConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyStackDashPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.level = NewLevel(&g.cfg, runtime.Seed)
	g.player = NewPlayer(&g.cfg)
	g.resolver = NewResolver(cfg.Collision.SnapAbove, cfg.Collision.SnapBelow, cfg.Physics.LedgeEpsilon)

	g.state = StateStarting
	g.stateTimer = cfg.World.StartTicks
	g.score = 0
	g.timer = 0
	g.tickCount = 0
	g.cameraX = 0
}

// Step advances the game by one tick. The per-tick pipeline order is fixed:
// input/kinematics, collision, tile collection, gap probe, power-ups,
// camera, finish, kill bound. Each Step is a pure function of the previous
// state and the input frame.
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

	case StateGameOver, StateLevelComplete:
		return g.result(sounds)
	}

	// PLAYING from here on.
	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return g.result(sounds)
	}

	g.timer++

	// Kinematics. Difficulty scaling feeds into the base speed only; with
	// progression disabled this is the configured base speed unchanged.
	baseSpeed := g.difficulty.Speed(g.cfg.Physics.BaseSpeed, g.score, g.timer)
	if g.player.Update(in, baseSpeed) {
		sounds = append(sounds, core.SoundJump)
	}

	// Collision resolution against all platforms, bridges included.
	g.resolver.Resolve(g.player, g.level.Platforms)

	// Tile collection.
	if g.level.CollectTile(g.player.Rect()) {
		g.player.AddTile()
		g.score += g.cfg.Scoring.TilePoints
		sounds = append(sounds, core.SoundPickup)
	}

	// Magnet effect drags nearby tiles toward the actor.
	if g.player.HasEffect(EffectMagnet) {
		g.level.PullTiles(g.player.X, g.player.Y, g.cfg.PowerUps.MagnetRange, g.cfg.PowerUps.MagnetPull)
	}

	// Gap probe: spend a tile on a bridge, or fall.
	if g.player.VelY > g.cfg.Bridge.MinFallSpeed && g.level.OverGap(g.player) {
		if g.player.RemoveTile() {
			g.level.BuildBridge(g.player.X, g.player.Y)
			sounds = append(sounds, core.SoundDrop)
		} else {
			g.player.Fall()
			g.state = StateGameOver
			sounds = append(sounds, core.SoundFall)
		}
	}

	// Power-up collection.
	if kind, ok := g.level.CollectPowerUp(g.player.Rect()); ok {
		g.player.ApplyEffect(effectFor(kind))
		sounds = append(sounds, core.SoundPowerup)
	}

	// Camera follows with exponential lag, keeping the actor a third in.
	targetX := g.player.X - g.cfg.World.Width/3
	g.cameraX += (targetX - g.cameraX) * g.cfg.World.CameraLag

	// Finish line: one-shot bonus, then the state transition blocks re-entry.
	if g.state == StatePlaying && g.level.AtFinish(g.player.Rect()) {
		g.state = StateLevelComplete
		sounds = append(sounds, core.SoundSuccess)

		tickRate := g.runtime.TickRate
		if tickRate <= 0 {
			tickRate = 60
		}
		seconds := g.timer / tickRate
		timeBonus := g.cfg.Scoring.TimeBonusBase - seconds*g.cfg.Scoring.TimeBonusRate
		if timeBonus < 0 {
			timeBonus = 0
		}
		g.score += timeBonus + g.player.Tiles*g.cfg.Scoring.TileBonus
	}

	// Kill bound.
	if g.state == StatePlaying && g.player.Y > g.cfg.World.Height+g.cfg.World.KillMargin {
		g.state = StateGameOver
		sounds = append(sounds, core.SoundFall)
	}

	return g.result(sounds)
}

// effectFor maps a collected power-up to its actor effect.
func effectFor(kind PowerUpKind) EffectKind {
	switch kind {
	case PowerUpSpeed:
		return EffectSpeed
	case PowerUpJump:
		return EffectJump
	default:
		return EffectMagnet
	}
}

// result packages the current state and this tick's sounds.
func (g *Game) result(sounds []core.SoundEvent) core.StepResult {
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateLevelComplete,
		Won:      g.state == StateLevelComplete,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("stackdash", func() registry.Game {
		return New()
	})
}
