package config

import "math"

// DifficultyManager calculates per-floor parameters from the progression
// settings. All outputs are pure functions of the floor index, so scaling
// never breaks run determinism.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a floor index.
func (d *DifficultyManager) Level(floorIndex int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type != "floor" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(floorIndex)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GuardCount returns the guard roster size for a floor.
func (d *DifficultyManager) GuardCount(base int, floorIndex int) int {
	level := d.Level(floorIndex)
	return base + int(level*float64(d.cfg.Scaling.GuardBonus))
}

// VisionRange returns the guard vision range for a floor.
func (d *DifficultyManager) VisionRange(base int, floorIndex int) int {
	level := d.Level(floorIndex)
	return base + int(level*float64(d.cfg.Scaling.VisionBonus))
}

// WallDensity returns the carve density for a floor.
func (d *DifficultyManager) WallDensity(base float64, floorIndex int) float64 {
	level := d.Level(floorIndex)
	result := base + level*d.cfg.Scaling.DensityBonus
	if result > 0.35 { // Denser floors rarely pass validation
		result = 0.35
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
