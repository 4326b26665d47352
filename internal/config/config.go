// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// StackDashConfig contains all configuration for the Stack Dash game.
type StackDashConfig struct {
	World      StackDashWorld     `yaml:"world"`
	Physics    StackDashPhysics   `yaml:"physics"`
	Player     StackDashPlayer    `yaml:"player"`
	Level      StackDashLevel     `yaml:"level"`
	Bridge     StackDashBridge    `yaml:"bridge"`
	PowerUps   StackDashPowerUps  `yaml:"powerups"`
	Collision  StackDashCollision `yaml:"collision"`
	Scoring    StackDashScoring   `yaml:"scoring"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// StackDashWorld defines the world and viewport geometry in world units.
// The renderer projects world units onto terminal cells; simulation never
// sees cell coordinates.
type StackDashWorld struct {
	Width        float64 `yaml:"width"`         // Viewport width in world units
	Height       float64 `yaml:"height"`        // Viewport height in world units
	LevelWidth   float64 `yaml:"level_width"`   // Total level width
	GroundDepth  float64 `yaml:"ground_depth"`  // Thickness of the ground platform
	KillMargin   float64 `yaml:"kill_margin"`   // How far below the viewport the actor may fall
	FinishOffset float64 `yaml:"finish_offset"` // Finish line distance from the level's right edge
	FinishWidth  float64 `yaml:"finish_width"`
	FinishHeight float64 `yaml:"finish_height"`
	StartTicks   int     `yaml:"start_ticks"` // Countdown length before PLAYING
	CameraLag    float64 `yaml:"camera_lag"`  // Exponential camera follow factor
}

// StackDashPhysics defines kinematics parameters.
type StackDashPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpPower    float64 `yaml:"jump_power"` // Negative: up
	BaseSpeed    float64 `yaml:"base_speed"`
	FallSpeed    float64 `yaml:"fall_speed"`    // Downward velocity on a failed gap crossing
	LedgeEpsilon float64 `yaml:"ledge_epsilon"` // Tiny fall velocity when walking off a ledge
}

// StackDashPlayer defines actor parameters. Positions are center-based.
type StackDashPlayer struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MaxTiles   int     `yaml:"max_tiles"`   // Resource carry cap
	JumpSafety int     `yaml:"jump_safety"` // Frames after a jump during which the gap probe is off
}

// StackDashLevel defines procedural generation parameters.
type StackDashLevel struct {
	PlatformWidth  float64 `yaml:"platform_width"`
	PlatformHeight float64 `yaml:"platform_height"`
	HeightMin      float64 `yaml:"height_min"` // Platform elevation above ground, lower bound
	HeightMax      float64 `yaml:"height_max"`
	GapMin         float64 `yaml:"gap_min"`
	GapMax         float64 `yaml:"gap_max"`
	FirstPlatformX float64 `yaml:"first_platform_x"`
	EndMargin      float64 `yaml:"end_margin"` // Empty run-out before the finish
	TilesMin       int     `yaml:"tiles_min"`  // Tiles spawned per platform, bounds
	TilesMax       int     `yaml:"tiles_max"`
	TileWidth      float64 `yaml:"tile_width"`
	TileHeight     float64 `yaml:"tile_height"`
}

// StackDashBridge defines bridge placement and the gap probe.
type StackDashBridge struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	OffsetX      float64 `yaml:"offset_x"` // Relative to the actor's center
	OffsetY      float64 `yaml:"offset_y"`
	ProbeWidth   float64 `yaml:"probe_width"`
	ProbeDepth   float64 `yaml:"probe_depth"`
	MinFallSpeed float64 `yaml:"min_fall_speed"` // Probe fires only when falling faster than this
	MinRunSpeed  float64 `yaml:"min_run_speed"`  // ... and moving horizontally faster than this
}

// StackDashPowerUps defines power-up spawn and effect parameters.
type StackDashPowerUps struct {
	Chance      float64 `yaml:"chance"`   // Spawn probability per platform
	Duration    int     `yaml:"duration"` // Effect length in ticks
	SpeedFactor float64 `yaml:"speed_factor"`
	JumpFactor  float64 `yaml:"jump_factor"`
	MagnetRange float64 `yaml:"magnet_range"`
	MagnetPull  float64 `yaml:"magnet_pull"` // World units a magnetized tile moves per tick
	Radius      float64 `yaml:"radius"`
}

// StackDashCollision defines resolver tolerances.
type StackDashCollision struct {
	SnapAbove float64 `yaml:"snap_above"` // Ground-snap band above a platform top
	SnapBelow float64 `yaml:"snap_below"` // ... and below it
}

// StackDashScoring defines score values.
type StackDashScoring struct {
	TilePoints    int `yaml:"tile_points"`
	TimeBonusBase int `yaml:"time_bonus_base"`
	TimeBonusRate int `yaml:"time_bonus_rate"` // Points lost per elapsed second
	TileBonus     int `yaml:"tile_bonus"`      // Per tile still held at the finish
}

// GhostChaseConfig contains all configuration for the Ghost Chase game.
type GhostChaseConfig struct {
	Maze       GhostChaseMaze   `yaml:"maze"`
	Round      GhostChaseRound  `yaml:"round"`
	Ghost      GhostChaseGhost  `yaml:"ghost"`
	Runner     GhostChaseRunner `yaml:"runner"`
	Scoring    GhostChaseScore  `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GhostChaseMaze defines maze generation parameters.
// Width and height should be even so the carver's odd-cell lattice fits.
type GhostChaseMaze struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	GhostPathsMin int `yaml:"ghost_paths_min"` // Walls only the ghost can cross
	GhostPathsMax int `yaml:"ghost_paths_max"`
}

// GhostChaseRound defines round flow parameters.
type GhostChaseRound struct {
	TimeLimitTicks int `yaml:"time_limit_ticks"`
	Orbs           int `yaml:"orbs"`
	StartTicks     int `yaml:"start_ticks"`
}

// GhostChaseGhost defines the chasing ghost's behavior.
type GhostChaseGhost struct {
	MoveEvery int `yaml:"move_every"` // Ticks between ghost steps
}

// GhostChaseRunner defines the player-controlled runner.
type GhostChaseRunner struct {
	MoveEvery int `yaml:"move_every"` // Minimum ticks between runner steps
}

// GhostChaseScore defines score values.
type GhostChaseScore struct {
	OrbPoints       int `yaml:"orb_points"`
	EscapeBonusRate int `yaml:"escape_bonus_rate"` // Points per remaining second on escape
}

// BulletBounceConfig contains all configuration for the Bullet Bounce game.
type BulletBounceConfig struct {
	Arena      BulletBounceArena   `yaml:"arena"`
	Player     BulletBouncePlayer  `yaml:"player"`
	Bullets    BulletBounceBullets `yaml:"bullets"`
	Scoring    BulletBounceScore   `yaml:"scoring"`
	Difficulty DifficultyConfig    `yaml:"difficulty"`
}

// BulletBounceArena defines the arena in world units.
type BulletBounceArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BulletBouncePlayer defines the dodging player.
type BulletBouncePlayer struct {
	Speed     float64 `yaml:"speed"`
	Radius    float64 `yaml:"radius"`
	Health    int     `yaml:"health"`
	HitDamage int     `yaml:"hit_damage"`
}

// BulletBounceBullets defines bullet spawning and flight.
type BulletBounceBullets struct {
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	MaxBounces  int     `yaml:"max_bounces"`
	Lifetime    int     `yaml:"lifetime"` // Ticks before a bullet expires
	SpawnEvery  int     `yaml:"spawn_every"`
	MaxActive   int     `yaml:"max_active"`
	AngleJitter float64 `yaml:"angle_jitter"` // Random bounce deflection in radians
}

// BulletBounceScore defines score values.
type BulletBounceScore struct {
	PointsPerSecond int `yaml:"points_per_second"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
