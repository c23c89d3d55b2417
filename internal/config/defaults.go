package config

import (
	_ "embed"
)

//go:embed defaults/heist.yaml
var defaultHeistYAML []byte

// DefaultHeistConfig returns the default heist configuration.
func DefaultHeistConfig() HeistConfig {
	return HeistConfig{
		Floor: FloorConfig{
			Width:       24,
			Height:      16,
			WallDensity: 0.12,
			SlowTerrain: true,
			SlowDensity: 0.06,
		},
		Guards: GuardConfig{
			Count:        3,
			VisionRange:  6,
			AlertTurns:   2,
			ChaseTurns:   5,
			SlowCost:     2,
			HazardRadius: 4,
		},
		Generation: GenerationConfig{
			Doors:            2,
			Keys:             1,
			Hazards:          2,
			MinSpawnDistance: 4,
			MaxAttempts:      64,
		},
		Rules: RulesConfig{
			Floors: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "floor",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				GuardBonus:   2,
				VisionBonus:  2,
				DensityBonus: 0.05,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultHeistYAML
}
