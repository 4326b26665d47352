package config

import (
	_ "embed"
)

//go:embed defaults/stackdash.yaml
var defaultStackDashYAML []byte

//go:embed defaults/ghostchase.yaml
var defaultGhostChaseYAML []byte

//go:embed defaults/bulletbounce.yaml
var defaultBulletBounceYAML []byte

// DefaultStackDashConfig returns the default Stack Dash configuration.
func DefaultStackDashConfig() StackDashConfig {
	return StackDashConfig{
		World: StackDashWorld{
			Width:        800,
			Height:       600,
			LevelWidth:   5000,
			GroundDepth:  50,
			KillMargin:   200,
			FinishOffset: 300,
			FinishWidth:  20,
			FinishHeight: 200,
			StartTicks:   180, // 3 seconds at 60 FPS
			CameraLag:    0.1,
		},
		Physics: StackDashPhysics{
			Gravity:      0.8,
			JumpPower:    -15,
			BaseSpeed:    5,
			FallSpeed:    15,
			LedgeEpsilon: 0.1,
		},
		Player: StackDashPlayer{
			StartX:     100,
			StartY:     500,
			Width:      40,
			Height:     60,
			MaxTiles:   20,
			JumpSafety: 10,
		},
		Level: StackDashLevel{
			PlatformWidth:  300,
			PlatformHeight: 20,
			HeightMin:      100,
			HeightMax:      200,
			GapMin:         80,
			GapMax:         150,
			FirstPlatformX: 500,
			EndMargin:      500,
			TilesMin:       2,
			TilesMax:       5,
			TileWidth:      30,
			TileHeight:     10,
		},
		Bridge: StackDashBridge{
			Width:        40,
			Height:       10,
			OffsetX:      -20,
			OffsetY:      20,
			ProbeWidth:   10,
			ProbeDepth:   100,
			MinFallSpeed: 2.0,
			MinRunSpeed:  0.5,
		},
		PowerUps: StackDashPowerUps{
			Chance:      0.3,
			Duration:    300, // 5 seconds at 60 FPS
			SpeedFactor: 1.5,
			JumpFactor:  1.3,
			MagnetRange: 100,
			MagnetPull:  4,
			Radius:      15,
		},
		Collision: StackDashCollision{
			SnapAbove: 5,
			SnapBelow: 10,
		},
		Scoring: StackDashScoring{
			TilePoints:    10,
			TimeBonusBase: 10000,
			TimeBonusRate: 10,
			TileBonus:     50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 0,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0,
				SpacingReduction: 0,
			},
		},
	}
}

// DefaultGhostChaseConfig returns the default Ghost Chase configuration.
func DefaultGhostChaseConfig() GhostChaseConfig {
	return GhostChaseConfig{
		Maze: GhostChaseMaze{
			Width:         12,
			Height:        12,
			GhostPathsMin: 3,
			GhostPathsMax: 6,
		},
		Round: GhostChaseRound{
			TimeLimitTicks: 5400, // 90 seconds at 60 FPS
			Orbs:           5,
			StartTicks:     120,
		},
		Ghost: GhostChaseGhost{
			MoveEvery: 20,
		},
		Runner: GhostChaseRunner{
			MoveEvery: 6,
		},
		Scoring: GhostChaseScore{
			OrbPoints:       100,
			EscapeBonusRate: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 5400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5, // Ghost steps up to 50% more often
				SpacingReduction: 0,
			},
		},
	}
}

// DefaultBulletBounceConfig returns the default Bullet Bounce configuration.
func DefaultBulletBounceConfig() BulletBounceConfig {
	return BulletBounceConfig{
		Arena: BulletBounceArena{
			Width:  800,
			Height: 600,
		},
		Player: BulletBouncePlayer{
			Speed:     5,
			Radius:    20,
			Health:    100,
			HitDamage: 25,
		},
		Bullets: BulletBounceBullets{
			Speed:       10,
			Radius:      5,
			MaxBounces:  3,
			Lifetime:    300, // 5 seconds at 60 FPS
			SpawnEvery:  45,
			MaxActive:   12,
			AngleJitter: 0.1,
		},
		Scoring: BulletBounceScore{
			PointsPerSecond: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // 3 minutes at 60 FPS
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				SpacingReduction: 15, // Bullets spawn up to 15 ticks more often
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "stackdash":
		return defaultStackDashYAML
	case "ghostchase":
		return defaultGhostChaseYAML
	case "bulletbounce":
		return defaultBulletBounceYAML
	default:
		return nil
	}
}
