package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStackDash loads Stack Dash configuration.
// Search order: customPath -> ~/.arcade/configs/stackdash.yaml -> ./configs/stackdash.yaml -> embedded default
func LoadStackDash(customPath string) (StackDashConfig, error) {
	var cfg StackDashConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stackdash.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/stackdash.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStackDashYAML, &cfg); err != nil {
		return DefaultStackDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadGhostChase loads Ghost Chase configuration.
// Search order: customPath -> ~/.arcade/configs/ghostchase.yaml -> ./configs/ghostchase.yaml -> embedded default
func LoadGhostChase(customPath string) (GhostChaseConfig, error) {
	var cfg GhostChaseConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ghostchase.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ghostchase.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGhostChaseYAML, &cfg); err != nil {
		return DefaultGhostChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadBulletBounce loads Bullet Bounce configuration.
// Search order: customPath -> ~/.arcade/configs/bulletbounce.yaml -> ./configs/bulletbounce.yaml -> embedded default
func LoadBulletBounce(customPath string) (BulletBounceConfig, error) {
	var cfg BulletBounceConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bulletbounce.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/bulletbounce.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBulletBounceYAML, &cfg); err != nil {
		return DefaultBulletBounceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyStackDashPreset modifies the config based on a difficulty preset.
func ApplyStackDashPreset(cfg *StackDashConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Level.GapMin = 60
		cfg.Level.GapMax = 120
		cfg.Level.TilesMin = 3
		cfg.PowerUps.Chance = 0.4
	case DifficultyHard:
		cfg.Level.GapMin = 100
		cfg.Level.GapMax = 150
		cfg.Level.TilesMax = 4
		cfg.PowerUps.Chance = 0.2
		cfg.PowerUps.Duration = 240
	}
}

// ApplyGhostChasePreset modifies the config based on a difficulty preset.
func ApplyGhostChasePreset(cfg *GhostChaseConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Ghost.MoveEvery = 25
		cfg.Round.TimeLimitTicks = 7200
	case DifficultyHard:
		cfg.Ghost.MoveEvery = 14
		cfg.Round.TimeLimitTicks = 3600
		cfg.Maze.GhostPathsMax = 8
	}
}

// ApplyBulletBouncePreset modifies the config based on a difficulty preset.
func ApplyBulletBouncePreset(cfg *BulletBounceConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Bullets.SpawnEvery = 60
		cfg.Bullets.MaxActive = 8
	case DifficultyHard:
		cfg.Bullets.SpawnEvery = 30
		cfg.Bullets.MaxActive = 16
		cfg.Player.HitDamage = 34
	}
}
