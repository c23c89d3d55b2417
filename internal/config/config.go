// Package config provides YAML-based configuration loading and difficulty
// management for heist runs.
package config

// HeistConfig contains all tunables for a heist run.
type HeistConfig struct {
	Floor      FloorConfig      `yaml:"floor"`
	Guards     GuardConfig      `yaml:"guards"`
	Generation GenerationConfig `yaml:"generation"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FloorConfig defines floor carving parameters.
type FloorConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	WallDensity float64 `yaml:"wall_density"`
	SlowTerrain bool    `yaml:"slow_terrain"`
	SlowDensity float64 `yaml:"slow_density"`
}

// GuardConfig defines guard roster size and senses.
type GuardConfig struct {
	Count        int `yaml:"count"`
	VisionRange  int `yaml:"vision_range"`
	AlertTurns   int `yaml:"alert_turns"`
	ChaseTurns   int `yaml:"chase_turns"`
	SlowCost     int `yaml:"slow_cost"`
	HazardRadius int `yaml:"hazard_radius"`
}

// GenerationConfig defines special tile placement.
type GenerationConfig struct {
	Doors            int `yaml:"doors"`
	Keys             int `yaml:"keys"`
	Hazards          int `yaml:"hazards"`
	MinSpawnDistance int `yaml:"min_spawn_distance"`
	MaxAttempts      int `yaml:"max_attempts"`
}

// RulesConfig defines run-level rules.
type RulesConfig struct {
	Floors int `yaml:"floors"` // Floors to clear to finish the run
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "floor" or "none"
	MaxAt int    `yaml:"max_at"` // Floor index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GuardBonus   int     `yaml:"guard_bonus"`   // Extra guards at max difficulty
	VisionBonus  int     `yaml:"vision_bonus"`  // Extra vision range at max difficulty
	DensityBonus float64 `yaml:"density_bonus"` // Extra wall density at max difficulty
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
