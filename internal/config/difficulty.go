package config

import "math"

// DifficultyManager turns a run's progress into pacing values. Each game
// feeds it a different base quantity: Stack Dash its run speed, Ghost
// Chase the ghost's step delay, Bullet Bounce the bullet spawn interval.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for the given difficulty config.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Level returns the current difficulty in [0, 1]. With progression
// disabled (or preset "fixed") the configured initial level is returned
// unchanged; otherwise it interpolates from the initial level to 1.0 as
// score or elapsed ticks approach the configured maximum.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.cfg.InitialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Speed scales a base speed up to base * (1 + SpeedMultiplier) at full
// difficulty. Ghost Chase passes 1.0 here and divides its step delay by
// the result.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Spacing shrinks a tick interval by up to SpacingReduction at full
// difficulty, floored at 15 ticks so spawns never become continuous.
func (d *DifficultyManager) Spacing(baseSpacing int, score int, ticks int) int {
	level := d.Level(score, ticks)
	reduction := int(level * float64(d.cfg.Scaling.SpacingReduction))
	result := baseSpacing - reduction
	if result < 15 {
		result = 15
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
