package config

import (
	"math"
	"testing"
)

func timeDifficulty(initial, multiplier float64, spacingReduction int) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling: ScalingConfig{
			SpeedMultiplier:  multiplier,
			SpacingReduction: spacingReduction,
		},
	}
}

func TestDifficultyLevelInterpolates(t *testing.T) {
	d := NewDifficultyManager(timeDifficulty(0.3, 0.5, 0))

	if got := d.Level(0, 0); got != 0.3 {
		t.Errorf("Level at start = %f, expected the initial level 0.3", got)
	}
	if got := d.Level(0, 500); math.Abs(got-0.65) > 1e-9 {
		t.Errorf("Level halfway = %f, expected 0.65", got)
	}
	if got := d.Level(0, 5000); got != 1.0 {
		t.Errorf("Level past max = %f, expected a clamp at 1.0", got)
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	cfg := timeDifficulty(0.3, 0.5, 0)
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if got := d.Level(9999, 9999); got != 0.3 {
		t.Errorf("Disabled progression should pin the level at 0.3, got %f", got)
	}
}

func TestDifficultySpeedScaling(t *testing.T) {
	d := NewDifficultyManager(timeDifficulty(0, 0.5, 0))

	if got := d.Speed(5.0, 0, 0); got != 5.0 {
		t.Errorf("Speed at level 0 = %f, expected the base 5.0", got)
	}
	if got := d.Speed(5.0, 0, 1000); math.Abs(got-7.5) > 1e-9 {
		t.Errorf("Speed at full difficulty = %f, expected 7.5", got)
	}
}

func TestDifficultySpacingFloor(t *testing.T) {
	d := NewDifficultyManager(timeDifficulty(0, 0, 100))

	if got := d.Spacing(60, 0, 0); got != 60 {
		t.Errorf("Spacing at level 0 = %d, expected the base 60", got)
	}
	// A reduction past the floor must not push spawns below 15 ticks.
	if got := d.Spacing(60, 0, 1000); got != 15 {
		t.Errorf("Spacing at full difficulty = %d, expected the 15-tick floor", got)
	}
}
